// Package manifest reads package-manager lock files and extracts vendor metadata blocks.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"go.trai.ch/autoload/internal/core/domain"
	"go.trai.ch/autoload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// extensionSeparator separates class and method in a callable identifier.
const extensionSeparator = "::"

// Reader implements ports.ManifestReader for composer.lock style JSON documents.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Parse reads the lock file at path and reduces it to a domain.Manifest.
func (r *Reader) Parse(path string, opts domain.ParseOptions) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestUnreadable.Error()), "path", path)
	}

	m, err := Decode(data, opts)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Decode parses lock file content already held in memory.
func Decode(data []byte, opts domain.ParseOptions) (*domain.Manifest, error) {
	var lock lockfileDTO
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestMalformed.Error())
	}
	if lock.Packages == nil {
		return nil, zerr.With(domain.ErrManifestMalformed, "reason", "missing packages field")
	}

	entries := *lock.Packages
	if opts.IncludeDev {
		entries = append(entries, lock.PackagesDev...)
	}

	key := opts.Key()
	m := &domain.Manifest{Packages: make([]domain.Package, 0, len(entries))}
	for i, entry := range entries {
		pkg, err := decodePackage(entry, key)
		if err != nil {
			return nil, zerr.With(err, "index", i)
		}
		m.Packages = append(m.Packages, pkg)
	}
	return m, nil
}

func decodePackage(entry packageDTO, key string) (domain.Package, error) {
	if entry.Name == nil || *entry.Name == "" {
		return domain.Package{}, zerr.With(domain.ErrManifestMalformed, "reason", "package without name")
	}
	pkg := domain.Package{Name: *entry.Name}

	raw, err := vendorBlock(entry.Extra, key)
	if err != nil {
		return domain.Package{}, zerr.With(err, "package", pkg.Name)
	}
	if raw == nil {
		return pkg, nil
	}

	block, err := decodeBlock(raw)
	if err != nil {
		return domain.Package{}, zerr.With(err, "package", pkg.Name)
	}
	if !block.IsEmpty() {
		pkg.Metadata = block
	}
	return pkg, nil
}

// vendorBlock returns the raw metadata block under extra[key], or nil when it is absent or empty.
// An extra value that is not an object carries no block.
func vendorBlock(extra json.RawMessage, key string) (json.RawMessage, error) {
	if !isObject(extra) {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(extra, &fields); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestMalformed.Error())
	}
	raw, ok := fields[key]
	if !ok || isEmpty(raw) {
		return nil, nil
	}
	return raw, nil
}

func decodeBlock(raw json.RawMessage) (*domain.MetadataBlock, error) {
	if !isObject(raw) {
		return nil, zerr.With(domain.ErrManifestMalformed, "reason", "metadata block is not an object")
	}
	var dto blockDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestMalformed.Error())
	}

	run, err := decodeHook(dto.Run)
	if err != nil {
		return nil, zerr.With(err, "field", "run")
	}
	terminated, err := decodeHook(dto.Terminated)
	if err != nil {
		return nil, zerr.With(err, "field", "terminated")
	}
	di, err := decodeDI(dto.DI)
	if err != nil {
		return nil, zerr.With(err, "field", "di")
	}

	return &domain.MetadataBlock{Run: run, Terminated: terminated, DI: di}, nil
}

func decodeHook(raw json.RawMessage) (*domain.HookEntry, error) {
	if isEmpty(raw) {
		return nil, nil
	}
	var dto hookDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestMalformed.Error())
	}
	entry := &domain.HookEntry{Name: dto.Name, Method: dto.Method}
	if entry.IsEmpty() {
		return nil, nil
	}
	return entry, nil
}

// decodeDI classifies the di value. A string holding "::" or a [class, method]
// pair is an extension point; any other string is a package-relative file.
func decodeDI(raw json.RawMessage) (*domain.DIValue, error) {
	if isEmpty(raw) {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v := domain.FileReference(s)
		if strings.Contains(s, extensionSeparator) {
			v = domain.ExtensionPoint(s)
		}
		return &v, nil
	}

	var pair []string
	if err := json.Unmarshal(raw, &pair); err == nil && len(pair) == 2 && pair[0] != "" && pair[1] != "" {
		v := domain.ExtensionPoint(pair[0] + extensionSeparator + pair[1])
		return &v, nil
	}

	return nil, zerr.With(domain.ErrManifestMalformed, "reason", "di must be a file name or a callable reference")
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// isEmpty reports whether raw is absent, null, false, zero, an empty string,
// an empty array or an empty object.
func isEmpty(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == "" || val == "0"
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
