// Package scanner turns vendor metadata blocks into ordered registration lists.
package scanner

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
)

// Scanner walks a manifest and classifies each package's metadata block.
type Scanner struct {
	logger  ports.Logger
	routing domain.TerminatedRouting
}

// New creates a Scanner. An empty routing selects domain.TerminatedSeparate.
func New(logger ports.Logger, routing domain.TerminatedRouting) *Scanner {
	if routing == "" {
		routing = domain.TerminatedSeparate
	}
	return &Scanner{
		logger:  logger,
		routing: routing,
	}
}

// Scan builds the registration lists in manifest order.
//
// Extension points are invoked through invoker as they are encountered; the
// first invocation error aborts the scan and is returned unchanged together
// with empty Registrations.
func (s *Scanner) Scan(
	ctx context.Context,
	m *domain.Manifest,
	invoker ports.ExtensionInvoker,
	paths ports.PathResolver,
) (domain.Registrations, error) {
	var regs domain.Registrations
	if m == nil {
		return regs, nil
	}

	for _, pkg := range m.Packages {
		block := pkg.Metadata
		if block.IsEmpty() {
			continue
		}
		s.logger.Debug(fmt.Sprintf("scanning metadata of %s", pkg.Name))

		if !block.Run.IsEmpty() {
			regs.Run = append(regs.Run, *block.Run)
		}

		if !block.Terminated.IsEmpty() {
			if s.routing == domain.TerminatedLegacy {
				regs.Run = append(regs.Run, *block.Terminated)
			} else {
				regs.Terminated = append(regs.Terminated, *block.Terminated)
			}
		}

		if block.DI != nil {
			ref, err := s.resolve(ctx, pkg.Name, *block.DI, invoker, paths)
			if err != nil {
				return domain.Registrations{}, err
			}
			regs.Definitions = append(regs.Definitions, ref)
		}
	}

	return regs, nil
}

func (s *Scanner) resolve(
	ctx context.Context,
	pkgName string,
	v domain.DIValue,
	invoker ports.ExtensionInvoker,
	paths ports.PathResolver,
) (domain.DIReference, error) {
	if v.Kind == domain.DIExtensionPoint {
		s.logger.Debug(fmt.Sprintf("invoking extension point %s for %s", v.Value, pkgName))
		defs, err := invoker.Call(ctx, v.Value)
		if err != nil {
			return domain.DIReference{}, err
		}
		return domain.EvaluatedReference(defs), nil
	}
	return domain.PathReference(filepath.Join(paths.BasePath(), pkgName, v.Value)), nil
}
