package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestUnreadable is returned when the lock file cannot be opened or read.
	ErrManifestUnreadable = zerr.New("manifest unreadable")

	// ErrManifestMalformed is returned when the lock file is not valid JSON or lacks required fields.
	ErrManifestMalformed = zerr.New("manifest malformed")

	// ErrCacheDirUnwritable is returned when the cache directory cannot be created or written to.
	ErrCacheDirUnwritable = zerr.New("cache directory unwritable")

	// ErrCacheArtifactCorrupt is returned when a cache artifact exists but cannot be decoded.
	ErrCacheArtifactCorrupt = zerr.New("cache artifact corrupt")

	// ErrHostRegistrationFailed is returned by a host when it rejects a registration.
	ErrHostRegistrationFailed = zerr.New("host registration failed")

	// ErrExtensionPointFailed is returned when a callable DI extension point cannot be evaluated.
	ErrExtensionPointFailed = zerr.New("extension point failed")

	// ErrInvalidTerminatedRouting is returned when the terminated routing mode is not recognised.
	ErrInvalidTerminatedRouting = zerr.New("invalid terminated routing")

	// ErrConfigMalformed is returned when the configuration file cannot be parsed.
	ErrConfigMalformed = zerr.New("config malformed")

	// ErrCacheDisabled is returned when a cache operation is requested without a cache directory.
	ErrCacheDisabled = zerr.New("caching disabled")

	// ErrUnknownCacheKind is returned when a cache kind name is not recognised.
	ErrUnknownCacheKind = zerr.New("unknown cache kind")
)
