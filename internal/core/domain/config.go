package domain

// Config holds the resolved settings for a scan or cache load.
type Config struct {
	// ManifestPath is the lock file to scan.
	ManifestPath string

	// CacheDir is the directory holding cache artifacts. Empty disables caching.
	CacheDir string

	// BasePath is the install root that package-relative DI files are resolved against.
	BasePath string

	// VendorKey is the key under "extra" that holds the metadata block.
	VendorKey string

	// IncludeDev also scans the manifest's packages-dev list.
	IncludeDev bool

	// Terminated selects where terminated hooks are routed.
	Terminated TerminatedRouting

	// ExtensionCommand is the command used to evaluate callable DI extension points.
	// The identifier is appended as the final argument.
	ExtensionCommand []string

	// LogLevel is one of debug, info, warn or error.
	LogLevel string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		ManifestPath: ManifestFileName,
		CacheDir:     DefaultCachePath(),
		BasePath:     VendorDirName,
		VendorKey:    DefaultVendorKey,
		Terminated:   TerminatedSeparate,
		LogLevel:     "info",
	}
}
