// Package host provides a host application that records what it is asked to register.
package host

import (
	"context"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Recorder)(nil)

// Recorder implements ports.Host by keeping every registration in memory.
// It is used by the CLI to show what a real host would receive.
type Recorder struct {
	basePath string
	invoker  ports.ExtensionInvoker

	run         []domain.HookDescriptor
	terminated  []domain.HookDescriptor
	definitions []domain.DIReference
}

// NewRecorder creates a Recorder resolving package files under basePath.
// A nil invoker makes every extension point call fail.
func NewRecorder(basePath string, invoker ports.ExtensionInvoker) *Recorder {
	return &Recorder{
		basePath: basePath,
		invoker:  invoker,
	}
}

// AddRun records a startup hook.
func (r *Recorder) AddRun(desc domain.HookDescriptor) error {
	if err := validate(desc); err != nil {
		return zerr.With(err, "hook", "run")
	}
	r.run = append(r.run, desc)
	return nil
}

// AddTerminated records a shutdown hook.
func (r *Recorder) AddTerminated(desc domain.HookDescriptor) error {
	if err := validate(desc); err != nil {
		return zerr.With(err, "hook", "terminated")
	}
	r.terminated = append(r.terminated, desc)
	return nil
}

// AddDefinitions records a DI reference.
func (r *Recorder) AddDefinitions(ref domain.DIReference) error {
	if !ref.IsPath() && ref.Definitions == nil {
		return zerr.With(domain.ErrHostRegistrationFailed, "reason", "empty definitions reference")
	}
	r.definitions = append(r.definitions, ref)
	return nil
}

// Call evaluates an extension point through the configured invoker.
func (r *Recorder) Call(ctx context.Context, identifier string) (domain.Definitions, error) {
	if r.invoker == nil {
		err := zerr.With(domain.ErrExtensionPointFailed, "identifier", identifier)
		return nil, zerr.With(err, "reason", "host cannot evaluate extension points")
	}
	return r.invoker.Call(ctx, identifier)
}

// BasePath returns the install root packages are resolved under.
func (r *Recorder) BasePath() string {
	return r.basePath
}

// Plan is a snapshot of everything recorded so far.
type Plan struct {
	Source      string                  `yaml:"source,omitempty"`
	Run         []domain.HookDescriptor `yaml:"run"`
	Terminated  []domain.HookDescriptor `yaml:"terminated"`
	Definitions []domain.DIReference    `yaml:"definitions"`
}

// Plan returns a copy of the recorded registrations.
func (r *Recorder) Plan() Plan {
	return Plan{
		Run:         append([]domain.HookDescriptor{}, r.run...),
		Terminated:  append([]domain.HookDescriptor{}, r.terminated...),
		Definitions: append([]domain.DIReference{}, r.definitions...),
	}
}

func validate(desc domain.HookDescriptor) error {
	if desc.Type != domain.HookTypeDI {
		return zerr.With(domain.ErrHostRegistrationFailed, "type", desc.Type)
	}
	if desc.Name == "" {
		return zerr.With(domain.ErrHostRegistrationFailed, "reason", "hook without target name")
	}
	return nil
}
