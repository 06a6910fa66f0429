package manifest

import "encoding/json"

// lockfileDTO is the subset of the lock file the reader looks at.
// Packages is a pointer so a missing field can be told apart from an empty list.
type lockfileDTO struct {
	Packages    *[]packageDTO `json:"packages"`
	PackagesDev []packageDTO  `json:"packages-dev"`
}

// packageDTO is a single entry of the packages list.
type packageDTO struct {
	Name  *string         `json:"name"`
	Extra json.RawMessage `json:"extra"`
}

// blockDTO is the vendor metadata block. Fields stay raw so emptiness can be
// judged before their shape is enforced.
type blockDTO struct {
	Run        json.RawMessage `json:"run"`
	Terminated json.RawMessage `json:"terminated"`
	DI         json.RawMessage `json:"di"`
}

// hookDTO is a run or terminated entry.
type hookDTO struct {
	Name   string `json:"name"`
	Method string `json:"method"`
}
