// Package lookup provides the reference lookup cache: memoized id→token maps
// for small, frequently-joined dimensions (countries, states, cities, genres).
//
// Tables are owned by a Cache instance rather than process globals. Loading
// is lazy and single-flight guarded, so a burst of cold requests issues one
// storage query per table. Tables never expire on their own; Invalidate and
// Reload are the explicit refresh operations.
//
// Unknown ids resolve to ok=false, which the renderer emits as null.
package lookup
