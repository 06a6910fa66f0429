package domain

import "go.trai.ch/zerr"

// CacheKind identifies one of the three cache artifacts.
type CacheKind string

const (
	// CacheRun is the artifact holding run hooks.
	CacheRun CacheKind = "run"
	// CacheTerminated is the artifact holding terminated hooks.
	CacheTerminated CacheKind = "terminated"
	// CacheDependency is the artifact holding DI references.
	CacheDependency CacheKind = "dependency"
)

// CacheKinds lists every artifact kind in write order.
var CacheKinds = []CacheKind{CacheRun, CacheTerminated, CacheDependency}

// ParseCacheKind converts a name into a CacheKind.
func ParseCacheKind(s string) (CacheKind, error) {
	for _, k := range CacheKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", zerr.With(ErrUnknownCacheKind, "kind", s)
}

// CacheStatus reports which artifacts exist in a cache directory.
type CacheStatus struct {
	Run        bool `yaml:"run"`
	Terminated bool `yaml:"terminated"`
	Dependency bool `yaml:"dependency"`
}

// Complete reports whether every artifact is present.
func (s CacheStatus) Complete() bool {
	return s.Run && s.Terminated && s.Dependency
}

// Has reports whether the artifact of the given kind is present.
func (s CacheStatus) Has(kind CacheKind) bool {
	switch kind {
	case CacheRun:
		return s.Run
	case CacheTerminated:
		return s.Terminated
	case CacheDependency:
		return s.Dependency
	default:
		return false
	}
}

// CacheSelection chooses which artifacts a cache read should load.
type CacheSelection struct {
	Run        bool
	Terminated bool
	Dependency bool
}

// AllKinds selects every artifact.
func AllKinds() CacheSelection {
	return CacheSelection{Run: true, Terminated: true, Dependency: true}
}

// SelectKinds builds a selection from a list of kinds.
func SelectKinds(kinds ...CacheKind) CacheSelection {
	var sel CacheSelection
	for _, k := range kinds {
		switch k {
		case CacheRun:
			sel.Run = true
		case CacheTerminated:
			sel.Terminated = true
		case CacheDependency:
			sel.Dependency = true
		}
	}
	return sel
}
