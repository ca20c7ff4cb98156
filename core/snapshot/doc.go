// Package snapshot caches rendered full-catalog pages.
//
// Pages are stored as the exact JSON bytes served to clients, so a cached
// response is byte-identical to a freshly built one. Keys embed the schema
// version and the page size; there is no TTL and pages are only removed by an
// explicit purge.
//
// Drivers:
//
//   - s3: objects in a MinIO/S3 bucket (core/storage)
//   - file: files below a directory, written atomically
//   - memory: an in-process map
//   - none: caching disabled
package snapshot
