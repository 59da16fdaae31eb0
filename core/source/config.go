package source

const (
	DriverHTTP     = "http"
	DriverStorage  = "storage"
	DriverDatabase = "database"
)

// Config holds configuration for the trainer record source.
type Config struct {
	// Driver selects where records come from (http, storage, database).
	Driver string `mapstructure:"driver" default:"http"`
	// BaseURL is the origin site serving /trainer/ endpoints.
	BaseURL string `mapstructure:"base_url" default:"https://www.pokemasdb.com"`
	// TimeoutSeconds bounds every single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// Concurrency is the number of records fetched in parallel.
	Concurrency int `mapstructure:"concurrency" default:"8"`
	// UserAgent is sent with every HTTP request.
	UserAgent string `mapstructure:"user_agent" default:"pokemasdb"`
	// Prefix is the object key prefix used by the storage driver.
	Prefix string `mapstructure:"prefix" default:"trainers/"`
}

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverHTTP, DriverStorage, DriverDatabase:
		return true
	default:
		return false
	}
}
