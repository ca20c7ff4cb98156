// Package integrity checks that the database matches what the catalogs expect.
//
// The catalog tables are written by external ingestion jobs, so their schema
// can drift from the models the service was built against. The schema check
// reports, per table, missing columns and type mismatches, and verifies the
// sync contract of every catalog: id, updated, and deleted and token where
// the descriptor uses them.
//
// # HTTP Endpoints
//
//   - GET /integrity/schema : Runs the schema check (admin only).
package integrity
