package config

// NewSOPWithPath builds an SOP config with the path pre-set, bypassing
// flag parsing in tests.
func NewSOPWithPath(path string) *SOP {
	return &SOP{path: path}
}
