package library

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dhowden/tag"
	"golang.org/x/sync/errgroup"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

// recognizedSuffix reports whether name carries one of the decoder catalog's
// suffixes, case-insensitively.
func recognizedSuffix(name string, suffixes map[string]bool) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return suffixes[ext]
}

// scannedFile is one probed media file awaiting an upsert.
type scannedFile struct {
	virtualPath string
	realPath    string
	durationMS  int64
	timeModUnix int64
	tags        map[string]string
}

// Rescan walks the configured root directory and upserts every recognized
// media file's tags into the files table: concurrent tag reads fanned out
// across goroutines via golang.org/x/sync/errgroup, one upsert transaction
// at the end, and an UPDATE+DATABASE changed: notification on completion.
//
// uri scopes rescan to a subtree in the real daemon; scoped rescans are not
// implemented here and are rejected with mpd.ErrArg.
func (l *Library) Rescan(uri string) error {
	if uri != "" {
		return mpd.ErrArg
	}
	if l.db == nil {
		return fmt.Errorf("library: rescan: no database")
	}

	l.mu.Lock()
	if l.scanning {
		l.mu.Unlock()
		return mpd.ErrUpdateAlready
	}
	l.scanning = true
	l.mu.Unlock()

	go l.runScan()
	return nil
}

func (l *Library) runScan() {
	defer func() {
		l.mu.Lock()
		l.scanning = false
		l.mu.Unlock()
	}()

	suffixes := map[string]bool{}
	for _, s := range mpd.DecoderSuffixes() {
		suffixes[s] = true
	}

	var paths []string
	filepath.WalkDir(l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if recognizedSuffix(p, suffixes) {
			paths = append(paths, p)
		}
		return nil
	})

	results := make([]*scannedFile, len(paths))
	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(8)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			sf, err := probeFile(l.root, p)
			if err != nil {
				return nil // unreadable/corrupt files are skipped, not fatal
			}
			mu.Lock()
			results[i] = sf
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	tx, err := l.db.sql.Begin()
	if err != nil {
		return
	}
	stmt, err := tx.Prepare(upsertSQL())
	if err != nil {
		tx.Rollback()
		return
	}
	for _, sf := range results {
		if sf == nil {
			continue
		}
		args := []interface{}{sf.virtualPath, sf.realPath}
		for _, tc := range tagColumns {
			args = append(args, nullableTag(sf.tags[tc.proto], tc.col))
		}
		args = append(args, sf.durationMS, sf.timeModUnix)
		if _, err := stmt.Exec(args...); err != nil {
			continue
		}
	}
	stmt.Close()
	now := time.Now().Unix()
	tx.Exec("UPDATE db_stats SET last_update = ? WHERE id = 0", now)
	if err := tx.Commit(); err != nil {
		return
	}

	if l.bus != nil {
		l.bus.Publish(mpd.EventUpdate | mpd.EventDatabase)
	}
}

func nullableTag(v string, col string) interface{} {
	if v == "" {
		return nil
	}
	if col == "year" || col == "original_year" || col == "disc" {
		n, err := strconv.Atoi(strings.SplitN(v, "-", 2)[0])
		if err != nil {
			return nil
		}
		return n
	}
	return v
}

func upsertSQL() string {
	cols := []string{"virtual_path", "real_path"}
	placeholders := []string{"?", "?"}
	updates := []string{"real_path = excluded.real_path"}
	for _, tc := range tagColumns {
		cols = append(cols, tc.col)
		placeholders = append(placeholders, "?")
		updates = append(updates, tc.col+" = excluded."+tc.col)
	}
	cols = append(cols, "duration_ms", "time_modified")
	placeholders = append(placeholders, "?", "?")
	updates = append(updates, "duration_ms = excluded.duration_ms", "time_modified = excluded.time_modified")

	return "INSERT INTO files (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") +
		") ON CONFLICT(virtual_path) DO UPDATE SET " + strings.Join(updates, ", ")
}

// probeFile reads one media file's tags and duration, returning a scannedFile
// keyed by its slash-separated path relative to the library root, with no
// scheme prefix.
func probeFile(root, realPath string) (*scannedFile, error) {
	rel, err := filepath.Rel(root, realPath)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	f, err := os.Open(realPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	sf := &scannedFile{
		virtualPath: rel,
		realPath:    realPath,
		timeModUnix: info.ModTime().Unix(),
		tags:        map[string]string{},
	}

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Untagged media is still cataloged under its path-derived title.
		sf.tags["Title"] = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		return sf, nil
	}

	if v := m.Artist(); v != "" {
		sf.tags["Artist"] = v
	}
	if v := m.AlbumArtist(); v != "" {
		sf.tags["Artist"] = v
	}
	if v := m.Album(); v != "" {
		sf.tags["Album"] = v
	}
	if v := m.Title(); v != "" {
		sf.tags["Title"] = v
	} else {
		sf.tags["Title"] = strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	}
	if v := m.Genre(); v != "" {
		sf.tags["Genre"] = v
	}
	if y := m.Year(); y != 0 {
		sf.tags["Date"] = strconv.Itoa(y)
	}
	if v := m.Composer(); v != "" {
		sf.tags["Composer"] = v
	}
	if v := m.Comment(); v != "" {
		sf.tags["Comment"] = v
	}
	if disc, _ := m.Disc(); disc != 0 {
		sf.tags["Disc"] = strconv.Itoa(disc)
	}
	return sf, nil
}
