// Package catalogs implements the catalog sync HTTP feature.
//
// Clients first call GET /updates and compare each watermark with the one
// they stored. For a stale catalog they either page through the full
// snapshot (GET /<catalog>?offset=N, following next_offset) or, for
// delta-syncable catalogs, ask for the changes since their cursor
// (GET /<catalog>?updated=T&after=TOKEN, following next_cursor).
//
// # Components
//
//   - Service: routes requests to the engine and administers the caches.
//   - Handler: HTTP endpoints.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /updates : watermarks grouped by catalog group.
//   - GET /:catalog : a snapshot page or a delta.
//   - POST /admin/snapshots/purge?catalog= : purge cached pages (admin only).
//   - POST /admin/lookups/reload : reload lookup tables (admin only).
package catalogs
