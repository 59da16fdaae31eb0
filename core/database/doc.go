// Package database handles database connections and schema inspection.
//
// It wraps GORM and configures either MySQL or SQLite from the application
// configuration. The database is optional: it is only needed when trainer
// records are served from (or mirrored into) the trainer_records table.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the
// server within the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns reads column definitions (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). MissingColumns compares them with the columns a
// caller needs, so a misconfigured table is reported before any query runs.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "trainer_records", []string{"name", "payload"})
package database
