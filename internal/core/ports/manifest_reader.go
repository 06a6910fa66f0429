// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/autoload/internal/core/domain"

// ManifestReader loads a package-manager lock file.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Parse reads and decodes the lock file at path.
	// It returns domain.ErrManifestUnreadable or domain.ErrManifestMalformed on failure
	// and never returns a partial manifest.
	Parse(path string, opts domain.ParseOptions) (*domain.Manifest, error)
}
