// Package store is the storage adapter of the sync engine.
//
// The engine only needs three things from the relational store: ordered,
// bounded scans of a catalog table (snapshot or cursor-filtered), the max
// "updated" of a table, and (key, token) pairs for lookup tables. GormStore
// implements them with gorm against MySQL or SQLite.
//
// Snapshot scans are ordered by primary key, never by a mutable column, so
// pages do not drift under concurrent writes. Delta scans are ordered by
// (updated, token, id) so the cursor tie-break is deterministic.
package store
