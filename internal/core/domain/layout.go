package domain

import "path/filepath"

const (
	// AutoloadDirName is the name of the internal workspace directory.
	AutoloadDirName = ".autoload"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "autoload.yaml"

	// ManifestFileName is the default lock file name.
	ManifestFileName = "composer.lock"

	// VendorDirName is the default install root for packages.
	VendorDirName = "vendor"

	// LockFileName is the name of the lock file guarding cache writes.
	LockFileName = ".lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache directory.
// It joins .autoload and cache.
func DefaultCachePath() string {
	return filepath.Join(AutoloadDirName, CacheDirName)
}
