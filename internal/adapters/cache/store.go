// Package cache persists derived registration lists as versioned YAML artifacts.
package cache

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.CacheStore = (*Store)(nil)

// Store implements ports.CacheStore on the local file system.
//
// Each kind lives in its own file, so the three artifacts may be in
// inconsistent states. Concurrent writers are serialised by a lock file;
// readers do not lock and across processes the last write wins.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write stores the three lists in dir, creating it if needed.
func (s *Store) Write(ctx context.Context, dir string, regs domain.Registrations) (err error) {
	dir = filepath.Clean(dir)
	if mkErr := os.MkdirAll(dir, domain.DirPerm); mkErr != nil {
		return zerr.With(zerr.Wrap(mkErr, domain.ErrCacheDirUnwritable.Error()), "dir", dir)
	}

	fl, err := acquireLock(ctx, filepath.Join(dir, domain.LockFileName))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, releaseLock(fl))
	}()

	if err := writeArtifact(dir, domain.CacheRun, regs.Run); err != nil {
		return err
	}
	if err := writeArtifact(dir, domain.CacheTerminated, regs.Terminated); err != nil {
		return err
	}
	return writeArtifact(dir, domain.CacheDependency, regs.Definitions)
}

// Check reports which artifacts exist in dir.
func (s *Store) Check(dir string) domain.CacheStatus {
	return domain.CacheStatus{
		Run:        exists(filepath.Join(dir, FileName(domain.CacheRun))),
		Terminated: exists(filepath.Join(dir, FileName(domain.CacheTerminated))),
		Dependency: exists(filepath.Join(dir, FileName(domain.CacheDependency))),
	}
}

// Read loads the selected artifacts. Missing artifacts leave their list empty.
func (s *Store) Read(dir string, want domain.CacheSelection) (domain.Registrations, error) {
	var regs domain.Registrations
	var err error

	if want.Run {
		if regs.Run, err = readArtifact[domain.HookEntry](dir, domain.CacheRun); err != nil {
			return domain.Registrations{}, err
		}
	}
	if want.Terminated {
		if regs.Terminated, err = readArtifact[domain.HookEntry](dir, domain.CacheTerminated); err != nil {
			return domain.Registrations{}, err
		}
	}
	if want.Dependency {
		if regs.Definitions, err = readArtifact[domain.DIReference](dir, domain.CacheDependency); err != nil {
			return domain.Registrations{}, err
		}
		if err := validateReferences(regs.Definitions); err != nil {
			return domain.Registrations{}, zerr.With(err, "dir", dir)
		}
	}
	return regs, nil
}

// Clear removes every artifact and the lock file from dir.
func (s *Store) Clear(dir string) error {
	var errs error
	names := []string{domain.LockFileName}
	for _, kind := range domain.CacheKinds {
		names = append(names, FileName(kind))
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove cache artifact"), "path", path))
		}
	}
	return errs
}

func writeArtifact[T any](dir string, kind domain.CacheKind, entries []T) error {
	doc, err := newArtifact(kind, entries)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode cache artifact"), "kind", string(kind))
	}
	data, err := encodeYAML(doc)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode cache artifact"), "kind", string(kind))
	}

	path := filepath.Join(dir, FileName(kind))
	if err := writeFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirUnwritable.Error()), "path", path)
	}
	return nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func readArtifact[T any](dir string, kind domain.CacheKind) ([]T, error) {
	path := filepath.Join(dir, FileName(kind))

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the caller's cache dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheArtifactCorrupt.Error()), "path", path)
	}

	var doc artifact[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheArtifactCorrupt.Error()), "path", path)
	}

	corrupt := func(reason string) error {
		err := zerr.With(domain.ErrCacheArtifactCorrupt, "path", path)
		return zerr.With(err, "reason", reason)
	}
	if doc.Version != FormatVersion {
		return nil, zerr.With(corrupt("unsupported format version"), "version", doc.Version)
	}
	if doc.Kind != kind {
		return nil, zerr.With(corrupt("artifact kind mismatch"), "found", string(doc.Kind))
	}

	sum, err := checksum(doc.Entries)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheArtifactCorrupt.Error()), "path", path)
	}
	if sum != doc.Checksum {
		return nil, corrupt("checksum mismatch")
	}

	if len(doc.Entries) == 0 {
		return nil, nil
	}
	return doc.Entries, nil
}

// validateReferences rejects entries that carry both a path and definitions and
// normalises evaluated definitions, so nested mappings decode as map[string]any.
func validateReferences(refs []domain.DIReference) error {
	for i := range refs {
		switch {
		case refs[i].Path != "" && len(refs[i].Definitions) > 0:
			err := zerr.With(domain.ErrCacheArtifactCorrupt, "reason", "entry has both path and definitions")
			return zerr.With(err, "index", i)
		case refs[i].Path == "":
			refs[i].Definitions = refs[i].Definitions.Normalize()
		}
	}
	return nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
