package ports

import (
	"context"

	"go.trai.ch/autoload/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// HookRegistrar accepts startup and shutdown hooks.
type HookRegistrar interface {
	// AddRun registers a hook to call at application startup.
	AddRun(desc domain.HookDescriptor) error
	// AddTerminated registers a hook to call at application shutdown.
	AddTerminated(desc domain.HookDescriptor) error
}

// DefinitionsRegistrar accepts dependency injection definitions.
type DefinitionsRegistrar interface {
	// AddDefinitions registers a definitions file path or evaluated definitions.
	AddDefinitions(ref domain.DIReference) error
}

// ExtensionInvoker evaluates callable DI extension points.
type ExtensionInvoker interface {
	// Call invokes the extension point and returns the definitions it produces.
	Call(ctx context.Context, identifier string) (domain.Definitions, error)
}

// PathResolver supplies the install root of the host's packages.
type PathResolver interface {
	// BasePath returns the directory packages are installed under.
	BasePath() string
}

// Registrar is the part of the host the emitter talks to.
type Registrar interface {
	HookRegistrar
	DefinitionsRegistrar
}

// Host is the full capability set the loader needs from the host application.
type Host interface {
	Registrar
	ExtensionInvoker
	PathResolver
}
