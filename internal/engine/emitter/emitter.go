// Package emitter pushes registration lists into the host application.
package emitter

import (
	"fmt"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
)

// Emitter hands registrations to a host.
type Emitter struct {
	logger ports.Logger
}

// New creates a new Emitter.
func New(logger ports.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// Emit registers run hooks, then terminated hooks, then DI references.
// The first host error is returned unchanged.
func (e *Emitter) Emit(host ports.Registrar, regs domain.Registrations) error {
	for _, entry := range regs.Run {
		if err := host.AddRun(entry.Descriptor()); err != nil {
			return err
		}
	}
	for _, entry := range regs.Terminated {
		if err := host.AddTerminated(entry.Descriptor()); err != nil {
			return err
		}
	}
	for _, ref := range regs.Definitions {
		if err := host.AddDefinitions(ref); err != nil {
			return err
		}
	}

	e.logger.Debug(fmt.Sprintf(
		"registered %d run hooks, %d terminated hooks, %d definition sets",
		len(regs.Run), len(regs.Terminated), len(regs.Definitions),
	))
	return nil
}
