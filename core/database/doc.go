// Package database handles catalog database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs and tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the database
// within the configured timeout. SQLite connections are pinned to a single
// connection so that ":memory:" databases are shared by every query.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns are used by the catalog schema check to
// verify that every catalog table carries the columns the sync engine relies on
// (id, updated, deleted and the projected fields).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "cities", []string{"id", "updated"})
package database
