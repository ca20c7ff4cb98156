// Package engine is the catalog sync engine.
//
// It serves three kinds of requests:
//
//   - Watermarks: the latest "updated" of every catalog, grouped.
//   - Page: an offset-addressed page of the live rows of a catalog, ordered
//     by primary key and cached in the snapshot cache.
//   - Delta: the rows changed after a client cursor, tombstones included,
//     ordered by (updated, token, id) and never cached.
//
// Pages fetch one row more than the page size to learn whether another page
// follows. Rows go through the renderer, which swaps foreign keys for tokens.
//
// Storage failures surface as ErrStorageUnavailable. Snapshot cache failures
// never leave the engine: they degrade to a rebuild from storage.
package engine
