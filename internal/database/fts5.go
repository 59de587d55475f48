//go:build !sqlite_fts5

// Hymn search needs SQLite's FTS5 module, which github.com/mattn/go-sqlite3
// only compiles in when the sqlite_fts5 build tag is set:
//
//	go build -tags sqlite_fts5 ./...
//	go test -tags sqlite_fts5 ./...
//
// Without the tag every database open fails at the CREATE VIRTUAL TABLE
// statement with "no such module: fts5", so the missing tag is surfaced here
// at compile time instead of at runtime.
package database

var _ = This_package_requires_building_with_tags_sqlite_fts5
