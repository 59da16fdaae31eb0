package source

import (
	"fmt"

	"pokemasdb/core/storage"

	"gorm.io/gorm"
)

// New builds the Source selected by cfg.Driver. The storage client and
// database are only required by their respective drivers.
func New(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	switch cfg.Driver {
	case DriverHTTP, "":
		return NewHTTP(cfg), nil
	case DriverStorage:
		if client == nil {
			return nil, fmt.Errorf("source driver %q requires a storage client", cfg.Driver)
		}
		return NewStorage(client, bucket, cfg.Prefix), nil
	case DriverDatabase:
		if db == nil {
			return nil, fmt.Errorf("source driver %q requires a database connection", cfg.Driver)
		}
		return NewDatabase(db), nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.Driver)
	}
}
