package domain

import "math"

// DIValueKind tags the two shapes a DI metadata value can take.
type DIValueKind int

const (
	// DIFileReference is a file name relative to the package's install directory.
	DIFileReference DIValueKind = iota
	// DIExtensionPoint is a callable identifier evaluated at scan time (e.g. "Vendor\\Provider::definitions").
	DIExtensionPoint
)

// String returns the string representation of the DIValueKind.
func (k DIValueKind) String() string {
	switch k {
	case DIFileReference:
		return "file"
	case DIExtensionPoint:
		return "extension"
	default:
		return "unknown"
	}
}

// DIValue is the di field of a metadata block, classified when the manifest is parsed.
type DIValue struct {
	Kind  DIValueKind
	Value string
}

// FileReference creates a DIValue pointing at a package-relative definitions file.
func FileReference(name string) DIValue {
	return DIValue{Kind: DIFileReference, Value: name}
}

// ExtensionPoint creates a DIValue naming a callable extension point.
func ExtensionPoint(identifier string) DIValue {
	return DIValue{Kind: DIExtensionPoint, Value: identifier}
}

// Definitions is an evaluated set of DI definitions.
// Values are nested maps, sequences, strings and booleans.
type Definitions map[string]any

// DIReference is a resolved DI entry: either an absolute path or evaluated definitions.
type DIReference struct {
	Path        string      `yaml:"path,omitempty"`
	Definitions Definitions `yaml:"definitions,omitempty"`
}

// PathReference creates a DIReference for a resolved definitions file.
func PathReference(path string) DIReference {
	return DIReference{Path: path}
}

// EvaluatedReference creates a DIReference holding definitions returned by an extension point.
// The definitions are normalised, see Definitions.Normalize.
func EvaluatedReference(defs Definitions) DIReference {
	return DIReference{Definitions: defs.Normalize()}
}

// maxExactInt is the largest magnitude a float64 holds without losing integer precision.
const maxExactInt = 1 << 53

// Normalize returns a copy of d in which every nested mapping is a map[string]any,
// every sequence is a []any and every whole number up to 2^53 is an int.
// A nil receiver yields an empty Definitions.
func (d Definitions) Normalize() Definitions {
	out := make(Definitions, len(d))
	for k, v := range d {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case Definitions:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	case float64:
		if val == math.Trunc(val) && math.Abs(val) <= maxExactInt {
			return int(val)
		}
		return val
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

// IsPath reports whether the reference points at a file.
func (r DIReference) IsPath() bool {
	return r.Path != ""
}
