// Package build exposes the version stamped into the autoload binary.
package build

// Version is reported by `autoload version` and `--version`.
// Release builds set it with -ldflags "-X go.trai.ch/autoload/internal/build.Version=...".
var Version = "dev"
