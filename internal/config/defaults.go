package config

// Default value constants to avoid magic strings.
const (
	DefaultLicense   = "MIT"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// ConfigDirName is the per-user config directory under $HOME.
	ConfigDirName = ".scarff"
	// ConfigFileName is the config file inside ConfigDirName.
	ConfigFileName = "config.yaml"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Author: AuthorConfig{
			License: DefaultLicense,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
