package domain

// HookTypeDI is the descriptor type used for every hook handed to the host.
const HookTypeDI = "DI"

// HookEntry names a target and the method to call on it at startup or shutdown.
type HookEntry struct {
	Name   string `yaml:"name"`
	Method string `yaml:"method"`
}

// IsEmpty reports whether the entry is nil or has neither a name nor a method.
func (h *HookEntry) IsEmpty() bool {
	return h == nil || (h.Name == "" && h.Method == "")
}

// HookDescriptor is the registration payload passed to the host's hook API.
type HookDescriptor struct {
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	Method string `yaml:"method"`
}

// Descriptor converts the entry into the fixed DI descriptor the host expects.
func (h HookEntry) Descriptor() HookDescriptor {
	return HookDescriptor{
		Type:   HookTypeDI,
		Name:   h.Name,
		Method: h.Method,
	}
}
