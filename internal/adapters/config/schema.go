package config

// Configfile represents the structure of the autoload.yaml configuration file.
// CacheDir is a pointer so an explicit empty value can disable caching.
type Configfile struct {
	Manifest         string   `yaml:"manifest"`
	CacheDir         *string  `yaml:"cache_dir"`
	BasePath         string   `yaml:"base_path"`
	VendorKey        string   `yaml:"vendor_key"`
	IncludeDev       bool     `yaml:"include_dev"`
	Terminated       string   `yaml:"terminated"`
	ExtensionCommand []string `yaml:"extension_command"`
	LogLevel         string   `yaml:"log_level"`
}
