// Package catalog defines the typed descriptors the sync engine is driven by.
//
// A Descriptor names a catalog, its source table, the SQL projection, the
// public field schema and its paging behaviour. The engine, the renderer and
// the snapshot cache consume descriptors generically, so adding a catalog is a
// matter of registering one more descriptor.
//
// The storage contract is intentionally small: the source table has a numeric
// primary key "id", an epoch-seconds "updated" column and, when SoftDelete is
// set, a nullable epoch-seconds "deleted" column.
package catalog
