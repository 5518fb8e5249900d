package mpd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServerForRender() *Server {
	s := &Server{enabledTags: make(map[string]bool)}
	for _, t := range listableTags() {
		s.enabledTags[strings.ToLower(t.ProtocolName)] = true
	}
	return s
}

func TestRenderSongIncludesFileAndTags(t *testing.T) {
	s := newTestServerForRender()
	row := FileRow{
		VirtualPath: "a/one.flac",
		DurationMS:  185500,
		TimeModUnix: 1700000000,
		Tags:        map[string]string{"Artist": "Bach", "Title": "Aria"},
	}

	var w strings.Builder
	s.renderSong(&w, row, 2, 7)
	out := w.String()

	assert.Contains(t, out, "file: a/one.flac\n")
	assert.Contains(t, out, "Time: 185\n")
	assert.Contains(t, out, "duration: 185.500\n")
	assert.Contains(t, out, "Artist: Bach\n")
	assert.Contains(t, out, "Title: Aria\n")
	assert.Contains(t, out, "Pos: 2\n")
	assert.Contains(t, out, "Id: 7\n")
}

func TestRenderSongOmitsPosIDWhenNegative(t *testing.T) {
	s := newTestServerForRender()
	row := FileRow{VirtualPath: "a.flac"}

	var w strings.Builder
	s.renderSong(&w, row, -1, -1)
	out := w.String()

	assert.NotContains(t, out, "Pos:")
	assert.NotContains(t, out, "Id:")
}

func TestRenderSongRespectsDisabledTagTypes(t *testing.T) {
	s := newTestServerForRender()
	s.enabledTags["artist"] = false

	row := FileRow{VirtualPath: "a.flac", Tags: map[string]string{"Artist": "Bach", "Title": "Aria"}}

	var w strings.Builder
	s.renderSong(&w, row, -1, -1)
	out := w.String()

	assert.NotContains(t, out, "Artist:")
	assert.Contains(t, out, "Title: Aria\n")
}

func TestRenderSongOmitsZeroDuration(t *testing.T) {
	s := newTestServerForRender()
	row := FileRow{VirtualPath: "a.flac"}

	var w strings.Builder
	s.renderSong(&w, row, -1, -1)
	out := w.String()

	assert.NotContains(t, out, "Time:")
	assert.NotContains(t, out, "duration:")
}
