// Package config loads the service configuration.
//
// Values come from the environment (optionally seeded from a .env file) and
// fall back to the `default` struct tags of each section. Keys map to
// variables as SECTION_KEY, e.g. SNAPSHOT_DRIVER or CATALOG_SCHEMA_VERSION.
//
// # Sections
//
//   - server: port, admin routes
//   - database: catalog database connection (mysql or sqlite)
//   - storage: S3/MinIO settings for the s3 snapshot driver
//   - snapshot: snapshot cache driver, key prefix and directory
//   - catalog: schema version and concurrency limits of the engine
//   - log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
package config
