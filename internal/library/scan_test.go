package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

func TestRecognizedSuffixCaseInsensitive(t *testing.T) {
	suffixes := map[string]bool{"flac": true, "mp3": true}
	assert.True(t, recognizedSuffix("track.FLAC", suffixes))
	assert.True(t, recognizedSuffix("track.mp3", suffixes))
	assert.False(t, recognizedSuffix("cover.jpg", suffixes))
	assert.False(t, recognizedSuffix("noext", suffixes))
}

func TestNullableTagEmptyIsNil(t *testing.T) {
	assert.Nil(t, nullableTag("", "title"))
}

func TestNullableTagStringColumnPassesThrough(t *testing.T) {
	assert.Equal(t, "Bach", nullableTag("Bach", "album_artist"))
}

func TestNullableTagYearColumnParsesLeadingInteger(t *testing.T) {
	assert.Equal(t, 1989, nullableTag("1989-05-01", "year"))
	assert.Nil(t, nullableTag("not-a-year", "original_year"))
}

func TestUpsertSQLCoversEveryTagColumn(t *testing.T) {
	q := upsertSQL()
	assert.Contains(t, q, "INSERT INTO files")
	assert.Contains(t, q, "ON CONFLICT(virtual_path) DO UPDATE SET")
	for _, tc := range tagColumns {
		assert.Contains(t, q, tc.col)
	}
}

func TestProbeFileFallsBackToFilenameTitleWhenUntagged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "My Song.flac")
	require.NoError(t, os.WriteFile(path, []byte("not actually audio"), 0o644))

	sf, err := probeFile(dir, path)
	require.NoError(t, err)
	assert.Equal(t, "My Song.flac", sf.virtualPath)
	assert.Equal(t, "My Song", sf.tags["Title"])
}

func TestRescanRejectsScopedURI(t *testing.T) {
	l := newTestLibrary(t)
	assert.Error(t, l.Rescan("some/subdir"))
}

func TestRescanRefusesConcurrentRun(t *testing.T) {
	l := newTestLibrary(t)

	l.mu.Lock()
	l.scanning = true
	l.mu.Unlock()

	assert.ErrorIs(t, l.Rescan(""), mpd.ErrUpdateAlready)
}
