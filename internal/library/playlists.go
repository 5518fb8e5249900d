package library

import (
	"fmt"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

// Playlists lists stored playlist names.
func (l *Library) Playlists() ([]string, error) {
	rows, err := l.db.sql.Query("SELECT name FROM playlists ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// LoadPlaylist returns a stored playlist's item paths, in order.
func (l *Library) LoadPlaylist(name string) ([]string, error) {
	rows, err := l.db.sql.Query("SELECT path FROM playlist_items WHERE playlist_name = ? ORDER BY pos", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	if len(out) == 0 {
		var exists bool
		l.db.sql.QueryRow("SELECT EXISTS(SELECT 1 FROM playlists WHERE name = ?)", name).Scan(&exists)
		if !exists {
			return nil, mpd.ErrNoExist
		}
	}
	return out, rows.Err()
}

// SavePlaylist implements `save`'s create/append/replace modes.
func (l *Library) SavePlaylist(name string, items []string, mode mpd.SaveMode) error {
	var exists bool
	l.db.sql.QueryRow("SELECT EXISTS(SELECT 1 FROM playlists WHERE name = ?)", name).Scan(&exists)

	switch mode {
	case mpd.SaveCreate:
		if exists {
			return mpd.ErrExist
		}
	case mpd.SaveReplace:
		if exists {
			if _, err := l.db.sql.Exec("DELETE FROM playlist_items WHERE playlist_name = ?", name); err != nil {
				return fmt.Errorf("library: replace playlist: %w", err)
			}
		}
	case mpd.SaveAppend:
		if !exists {
			return mpd.ErrNoExist
		}
	}

	tx, err := l.db.sql.Begin()
	if err != nil {
		return fmt.Errorf("library: save playlist: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR IGNORE INTO playlists (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("library: save playlist: %w", err)
	}

	start := 0
	if mode == mpd.SaveAppend {
		tx.QueryRow("SELECT COALESCE(MAX(pos) + 1, 0) FROM playlist_items WHERE playlist_name = ?", name).Scan(&start)
	}
	stmt, err := tx.Prepare("INSERT INTO playlist_items (playlist_name, pos, path) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("library: save playlist: %w", err)
	}
	defer stmt.Close()
	for i, path := range items {
		if _, err := stmt.Exec(name, start+i, path); err != nil {
			return fmt.Errorf("library: save playlist: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("library: save playlist: %w", err)
	}
	if l.bus != nil {
		l.bus.Publish(mpd.EventStoredPlaylist)
	}
	return nil
}

// AddToPlaylist appends a single path to a stored playlist, creating the
// playlist when it does not exist yet.
func (l *Library) AddToPlaylist(name, path string) error {
	var exists bool
	l.db.sql.QueryRow("SELECT EXISTS(SELECT 1 FROM playlists WHERE name = ?)", name).Scan(&exists)
	if !exists {
		if _, err := l.db.sql.Exec("INSERT INTO playlists (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("library: playlistadd: %w", err)
		}
	}
	var nextPos int
	l.db.sql.QueryRow("SELECT COALESCE(MAX(pos) + 1, 0) FROM playlist_items WHERE playlist_name = ?", name).Scan(&nextPos)
	if _, err := l.db.sql.Exec("INSERT INTO playlist_items (playlist_name, pos, path) VALUES (?, ?, ?)", name, nextPos, path); err != nil {
		return fmt.Errorf("library: playlistadd: %w", err)
	}
	if l.bus != nil {
		l.bus.Publish(mpd.EventStoredPlaylist)
	}
	return nil
}

// RemovePlaylist deletes a stored playlist and its items.
func (l *Library) RemovePlaylist(name string) error {
	res, err := l.db.sql.Exec("DELETE FROM playlists WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("library: rm: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return mpd.ErrNoExist
	}
	l.db.sql.Exec("DELETE FROM playlist_items WHERE playlist_name = ?", name)
	if l.bus != nil {
		l.bus.Publish(mpd.EventStoredPlaylist)
	}
	return nil
}
