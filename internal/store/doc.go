// Package store persists production state blobs in SQLite.
//
// Each production is one row: an event id and the JSON-encoded show.State.
// The store treats the blob as opaque: reconciliation against canonical
// defaults happens in the api layer on load, never here. Migrations are
// embedded SQL files applied in lexical order and recorded in
// schema_migrations.
package store
