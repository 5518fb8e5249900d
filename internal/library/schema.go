// Package library is the concrete Library/DB/Artwork collaborator: a
// github.com/mattn/go-sqlite3-backed store of scanned media metadata, rating
// stickers, and stored playlists. Filter predicates emitted by the protocol
// engine's filter parser are substituted directly into a WHERE clause.
package library

import (
	"database/sql"
	"fmt"
	"regexp"
	"sync"

	"github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS files (
	virtual_path      TEXT PRIMARY KEY,
	real_path         TEXT NOT NULL,
	album_artist      TEXT,
	album_artist_sort TEXT,
	album             TEXT,
	album_sort        TEXT,
	title             TEXT,
	genre             TEXT,
	year              INTEGER,
	original_year     INTEGER,
	composer          TEXT,
	performer         TEXT,
	conductor         TEXT,
	work              TEXT,
	grp               TEXT,
	comment           TEXT,
	disc              INTEGER,
	label             TEXT,
	mb_trackid        TEXT,
	mb_albumid        TEXT,
	mb_artistid       TEXT,
	duration_ms       INTEGER NOT NULL DEFAULT 0,
	time_modified     INTEGER NOT NULL DEFAULT 0,
	rating            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS playlists (
	name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS playlist_items (
	playlist_name TEXT NOT NULL,
	pos           INTEGER NOT NULL,
	path          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS db_stats (
	id             INTEGER PRIMARY KEY CHECK (id = 0),
	last_update    INTEGER NOT NULL DEFAULT 0
);
INSERT OR IGNORE INTO db_stats (id, last_update) VALUES (0, 0);

CREATE TABLE IF NOT EXISTS blobs (
	virtual_path TEXT PRIMARY KEY,
	data         BLOB NOT NULL,
	mime         TEXT NOT NULL
);
`

var driverOnce sync.Once

// registerDriver registers a sqlite3 driver variant with a `regexp()` SQL
// function, backing the filter parser's `=~`/`!~` operators (sqlite's
// REGEXP operator looks up a function named exactly "regexp").
func registerDriver() {
	driverOnce.Do(func() {
		sql.Register("sqlite3_mpdengine", &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("regexp", func(pattern, s string) (bool, error) {
					return regexp.MatchString(pattern, s)
				}, true)
			},
		})
	})
}

// Open opens (creating if necessary) the sqlite-backed library database at
// path and ensures the schema exists.
func Open(path string) (*DB, error) {
	registerDriver()
	db, err := sql.Open("sqlite3_mpdengine", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("library: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("library: apply schema: %w", err)
	}
	return &DB{sql: db}, nil
}

// DB wraps the underlying *sql.DB; Library holds one and adds the scanner
// and artwork resolver on top.
type DB struct {
	sql *sql.DB
}

func (d *DB) Close() error { return d.sql.Close() }
