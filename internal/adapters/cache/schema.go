package cache

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/autoload/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// FormatVersion is the artifact format written by this package.
const FormatVersion = 1

const (
	checksumPrefix = "xxh64:"
	artifactExt    = ".yaml"
	yamlIndent     = 2
)

// artifact is the on-disk document for one cache kind.
type artifact[T any] struct {
	Version  int              `yaml:"version"`
	Kind     domain.CacheKind `yaml:"kind"`
	Checksum string           `yaml:"checksum"`
	Entries  []T              `yaml:"entries"`
}

// FileName returns the artifact file name for a kind.
func FileName(kind domain.CacheKind) string {
	return string(kind) + artifactExt
}

func newArtifact[T any](kind domain.CacheKind, entries []T) (artifact[T], error) {
	if entries == nil {
		entries = []T{}
	}
	sum, err := checksum(entries)
	if err != nil {
		return artifact[T]{}, err
	}
	return artifact[T]{
		Version:  FormatVersion,
		Kind:     kind,
		Checksum: sum,
		Entries:  entries,
	}, nil
}

// checksum hashes the YAML encoding of entries.
func checksum[T any](entries []T) (string, error) {
	if entries == nil {
		entries = []T{}
	}
	data, err := encodeYAML(entries)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%016x", checksumPrefix, xxhash.Sum64(data)), nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
