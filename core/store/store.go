package store

import (
	"context"

	"catalog-sync/core/catalog"
)

// Row is one scanned record keyed by the descriptor's select aliases.
type Row map[string]any

// Cursor selects rows updated strictly after Updated. When After is set and
// the catalog has a token column, rows with updated == Updated and a token
// greater than After are included too.
type Cursor struct {
	Updated int64
	After   string
}

// ScanQuery bounds one catalog scan.
type ScanQuery struct {
	Offset int
	// Limit caps the number of rows. Zero scans everything.
	Limit int
	// Cursor switches the scan to delta mode: filtered by updated, ordered by
	// (updated, token, id) and including soft-deleted rows.
	Cursor *Cursor
}

// TokenRow pairs a reference key with its token. Keys are outermost first.
type TokenRow struct {
	Keys  []int64
	Token string
}

// Store is the engine's only view of the relational storage.
type Store interface {
	// Scan returns catalog rows. Snapshot scans (no cursor) skip soft-deleted
	// rows and are ordered by primary key.
	Scan(ctx context.Context, desc *catalog.Descriptor, q ScanQuery) ([]Row, error)
	// MaxUpdated returns the greatest updated value in table, or nil when the
	// table has no rows.
	MaxUpdated(ctx context.Context, table string) (*int64, error)
	// Tokens loads (keys, token) pairs from table, e.g. for lookup tables.
	Tokens(ctx context.Context, table string, keyColumns []string, tokenColumn string) ([]TokenRow, error)
}
