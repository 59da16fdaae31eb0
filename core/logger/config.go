package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (json, console).
	Format string `mapstructure:"format" default:"json"`
}

// IsValidFormat checks if the configured format is supported.
func (c Config) IsValidFormat() bool {
	return c.Format == "json" || c.Format == "console"
}
