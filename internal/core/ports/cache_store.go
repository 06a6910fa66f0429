package ports

import (
	"context"

	"go.trai.ch/autoload/internal/core/domain"
)

// CacheStore persists derived registration lists so later starts can skip scanning.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Write stores the three lists as independent artifacts in dir, creating dir if needed.
	Write(ctx context.Context, dir string, regs domain.Registrations) error

	// Check reports which artifacts exist in dir without reading them.
	Check(dir string) domain.CacheStatus

	// Read loads the selected artifacts from dir.
	// A selected artifact that does not exist leaves its list empty.
	Read(dir string, want domain.CacheSelection) (domain.Registrations, error)

	// Clear removes every artifact from dir.
	Clear(dir string) error
}
