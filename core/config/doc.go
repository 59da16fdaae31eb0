// Package config provides configuration management for pokemasdb.
//
// Settings come from environment variables, optionally seeded from a .env
// file. Every key has a default declared on its struct tag.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Log: level and format
//   - Source: where trainer records come from (http, storage, database)
//   - Storage: S3/MinIO credentials and bucket
//   - Database: MySQL or SQLite connection details
//
// Nested keys map to upper-case variables joined by underscores, so
// source.base_url is read from SOURCE_BASE_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Source.Driver)
package config
