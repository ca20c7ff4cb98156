// Package models defines the gorm models of the catalog tables.
//
// The tables are owned by the ingestion jobs; the service only reads them.
// The models are the expected schema for the integrity check and the
// fixtures of the tests, which create them with AutoMigrate.
package models
