package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// InitializeOnStart builds the caches before the server starts listening.
	InitializeOnStart bool `mapstructure:"initialize_on_start" default:"true"`
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}
