package library

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

// tagColumns is the ordered list of (sql column, protocol tag name) pairs
// every file row carries, shared by SELECT column lists and result mapping.
var tagColumns = []struct{ col, proto string }{
	{"album_artist", "Artist"},
	{"album_artist_sort", "ArtistSort"},
	{"album", "Album"},
	{"album_sort", "AlbumSort"},
	{"title", "Title"},
	{"genre", "Genre"},
	{"year", "Date"},
	{"original_year", "OriginalDate"},
	{"composer", "Composer"},
	{"performer", "Performer"},
	{"conductor", "Conductor"},
	{"work", "Work"},
	{"grp", "Grouping"},
	{"comment", "Comment"},
	{"disc", "Disc"},
	{"label", "Label"},
	{"mb_trackid", "MUSICBRAINZ_TRACKID"},
	{"mb_albumid", "MUSICBRAINZ_ALBUMID"},
	{"mb_artistid", "MUSICBRAINZ_ARTISTID"},
}

// Library is the concrete mpd.Library implementation.
type Library struct {
	db   *DB
	root string
	bus  mpd.ListenerBus

	mu       sync.Mutex
	scanning bool
}

// New wraps an opened DB as a Library rooted at root (the filesystem
// directory virtual paths are resolved under).
func New(db *DB, root string, bus mpd.ListenerBus) *Library {
	return &Library{db: db, root: root, bus: bus}
}

// SetBus attaches the event bus after construction, for callers that must
// build the Library before the bus exists (the bus itself is built around
// the Server's engine queue, which only exists once the Server does).
func (l *Library) SetBus(bus mpd.ListenerBus) { l.bus = bus }

func (l *Library) selectColumns() string {
	cols := []string{"virtual_path", "duration_ms", "time_modified", "rating"}
	for _, tc := range tagColumns {
		cols = append(cols, tc.col)
	}
	return strings.Join(cols, ", ")
}

func (l *Library) scanRow(rows *sql.Rows) (mpd.FileRow, error) {
	dest := make([]interface{}, 4+len(tagColumns))
	var vpath string
	var durMS, timeModified int64
	var rating int
	dest[0], dest[1], dest[2], dest[3] = &vpath, &durMS, &timeModified, &rating
	vals := make([]sql.NullString, len(tagColumns))
	for i := range tagColumns {
		dest[4+i] = &vals[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return mpd.FileRow{}, err
	}
	row := mpd.FileRow{
		VirtualPath: vpath,
		DurationMS:  durMS,
		TimeModUnix: timeModified,
		Rating:      rating,
		Tags:        make(map[string]string, len(tagColumns)),
	}
	for i, tc := range tagColumns {
		if vals[i].Valid && vals[i].String != "" {
			row.Tags[tc.proto] = vals[i].String
		}
	}
	return row, nil
}

func whereClause(filter string) string {
	if filter == "" {
		return ""
	}
	return " WHERE " + filter
}

// QueryFiles runs the parser's emitted predicate against the files table.
func (l *Library) QueryFiles(qp mpd.QueryParams) ([]mpd.FileRow, error) {
	q := "SELECT " + l.selectColumns() + " FROM files" + whereClause(qp.Filter)
	if qp.Sort != "" {
		q += " ORDER BY " + qp.Sort
	} else {
		q += " ORDER BY virtual_path"
	}
	if qp.HasWindow {
		q += fmt.Sprintf(" LIMIT %d OFFSET %d", qp.Limit, qp.Offset)
	}
	rows, err := l.db.sql.Query(q)
	if err != nil {
		return nil, fmt.Errorf("library: query: %w", err)
	}
	defer rows.Close()

	var out []mpd.FileRow
	for rows.Next() {
		row, err := l.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// QueryGroups enumerates distinct values of tag plus, for each, the group
// tags requested, per `list TAG [filter] [group ...]`.
func (l *Library) QueryGroups(qp mpd.QueryParams, tag mpd.TagEntry) ([]mpd.GroupRow, error) {
	cols := []string{tag.DBField}
	for _, g := range qp.Groups {
		cols = append(cols, g.DBField)
	}
	q := "SELECT DISTINCT " + strings.Join(cols, ", ") + " FROM files" + whereClause(qp.Filter)
	q += " ORDER BY " + strings.Join(cols, ", ")

	rows, err := l.db.sql.Query(q)
	if err != nil {
		return nil, fmt.Errorf("library: group query: %w", err)
	}
	defer rows.Close()

	var out []mpd.GroupRow
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		gr := mpd.GroupRow{Value: vals[0].String, Groups: map[string]string{}}
		for i, g := range qp.Groups {
			if v := vals[i+1]; v.Valid {
				gr.Groups[g.ProtocolName] = v.String
			}
		}
		out = append(out, gr)
	}
	return out, rows.Err()
}

// CountFiles returns song count and total playtime for the predicate.
func (l *Library) CountFiles(qp mpd.QueryParams) (int, int64, error) {
	q := "SELECT COUNT(*), COALESCE(SUM(duration_ms), 0) FROM files" + whereClause(qp.Filter)
	var n int
	var ms int64
	if err := l.db.sql.QueryRow(q).Scan(&n, &ms); err != nil {
		return 0, 0, fmt.Errorf("library: count: %w", err)
	}
	return n, ms, nil
}

// FileByVirtualPath looks up one row by its exact virtual path.
func (l *Library) FileByVirtualPath(path string) (mpd.FileRow, bool) {
	q := "SELECT " + l.selectColumns() + " FROM files WHERE virtual_path = ?"
	rows, err := l.db.sql.Query(q, path)
	if err != nil {
		return mpd.FileRow{}, false
	}
	defer rows.Close()
	if !rows.Next() {
		return mpd.FileRow{}, false
	}
	row, err := l.scanRow(rows)
	if err != nil {
		return mpd.FileRow{}, false
	}
	return row, true
}

// FilesByPrefix returns every row whose virtual path starts with prefix,
// used by lsinfo/listall and albumart's path resolution.
func (l *Library) FilesByPrefix(prefix string) ([]mpd.FileRow, error) {
	q := "SELECT " + l.selectColumns() + " FROM files WHERE virtual_path LIKE ? ORDER BY virtual_path"
	rows, err := l.db.sql.Query(q, sqlEscape(prefix)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []mpd.FileRow
	for rows.Next() {
		row, err := l.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func sqlEscape(s string) string { return strings.ReplaceAll(s, "'", "''") }

// SetRating stores displayed x 10 in the rating sticker emulation.
func (l *Library) SetRating(path string, rating int) error {
	if rating < 0 || rating > 10 {
		return mpd.ErrArg
	}
	res, err := l.db.sql.Exec("UPDATE files SET rating = ? WHERE virtual_path = ?", rating*10, path)
	if err != nil {
		return fmt.Errorf("library: set rating: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return mpd.ErrNoExist
	}
	if l.bus != nil {
		l.bus.Publish(mpd.EventRating)
	}
	return nil
}

// RatingOf returns the stored rating (0-100) for a path.
func (l *Library) RatingOf(path string) (int, bool) {
	var rating int
	err := l.db.sql.QueryRow("SELECT rating FROM files WHERE virtual_path = ?", path).Scan(&rating)
	if err != nil {
		return 0, false
	}
	return rating, true
}

// Stats returns distinct-artist, distinct-album, and file counts plus the
// last rescan's unix timestamp.
func (l *Library) Stats() (artists, albums, files int, dbUpdateUnix int64) {
	l.db.sql.QueryRow("SELECT COUNT(DISTINCT album_artist) FROM files WHERE album_artist IS NOT NULL AND album_artist != ''").Scan(&artists)
	l.db.sql.QueryRow("SELECT COUNT(DISTINCT album) FROM files WHERE album IS NOT NULL AND album != ''").Scan(&albums)
	l.db.sql.QueryRow("SELECT COUNT(*) FROM files").Scan(&files)
	l.db.sql.QueryRow("SELECT last_update FROM db_stats WHERE id = 0").Scan(&dbUpdateUnix)
	return
}
