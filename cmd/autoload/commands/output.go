package commands

import (
	"io"

	"go.trai.ch/autoload/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// listing is the printed form of registration lists. Nil fields are not selected.
type listing struct {
	Run        *[]domain.HookEntry   `yaml:"run,omitempty"`
	Terminated *[]domain.HookEntry   `yaml:"terminated,omitempty"`
	Dependency *[]domain.DIReference `yaml:"dependency,omitempty"`
}

func newListing(regs domain.Registrations, sel domain.CacheSelection) listing {
	var l listing
	if sel.Run {
		l.Run = &regs.Run
	}
	if sel.Terminated {
		l.Terminated = &regs.Terminated
	}
	if sel.Dependency {
		l.Dependency = &regs.Definitions
	}
	return l
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
