package mpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdListPlaylistRendersFileLines(t *testing.T) {
	lib := &fakeTestLibrary{loaded: map[string][]string{"mix": {"a.flac", "b.flac"}}}
	s := newHandlerTestServer(nil, nil, lib, nil, Config{})

	resp, err := cmdListPlaylist(s, nil, []string{"mix"})
	require.NoError(t, err)
	assert.Equal(t, "file: a.flac\nfile: b.flac\n", resp)
}

func TestCmdListPlaylistInfoResolvesLibraryRows(t *testing.T) {
	lib := &fakeTestLibrary{
		loaded: map[string][]string{"mix": {"a.flac"}},
		files:  map[string]FileRow{"a.flac": {VirtualPath: "a.flac", Tags: map[string]string{"Artist": "Bach"}}},
	}
	s := newHandlerTestServer(nil, nil, lib, nil, Config{})

	resp, err := cmdListPlaylistInfo(s, nil, []string{"mix"})
	require.NoError(t, err)
	assert.Contains(t, resp, "Artist: Bach\n")
}

func TestCmdListPlaylistsReportsNames(t *testing.T) {
	lib := &fakeTestLibrary{playlists: []string{"mix", "chill"}}
	s := newHandlerTestServer(nil, nil, lib, nil, Config{})

	resp, err := cmdListPlaylists(s, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "playlist: mix\nplaylist: chill\n", resp)
}

func TestCmdLoadAppendsEveryItemToQueue(t *testing.T) {
	lib := &fakeTestLibrary{loaded: map[string][]string{"mix": {"a.flac", "b.flac"}}}
	q := &fakeQueue{}
	s := newHandlerTestServer(nil, q, lib, nil, Config{})

	_, err := cmdLoad(s, nil, []string{"mix"})
	require.NoError(t, err)
	assert.Equal(t, "b.flac", q.addPath)
}

func TestCmdPlaylistAddRequiresModifiablePlaylists(t *testing.T) {
	lib := &fakeTestLibrary{}
	s := newHandlerTestServer(nil, nil, lib, nil, Config{AllowModifyingStoredPlaylists: false})

	_, err := cmdPlaylistAdd(s, nil, []string{"mix", "a.flac"})
	ae, ok := err.(*ackError)
	require.True(t, ok)
	assert.Equal(t, AckPermission, ae.Code)
}

func TestCmdPlaylistAddWhenAllowed(t *testing.T) {
	lib := &fakeTestLibrary{}
	s := newHandlerTestServer(nil, nil, lib, nil, Config{AllowModifyingStoredPlaylists: true})

	_, err := cmdPlaylistAdd(s, nil, []string{"mix", "a.flac"})
	require.NoError(t, err)
}

func TestCmdRmRequiresModifiablePlaylists(t *testing.T) {
	s := newHandlerTestServer(nil, nil, &fakeTestLibrary{}, nil, Config{AllowModifyingStoredPlaylists: false})

	_, err := cmdRm(s, nil, []string{"mix"})
	ae, ok := err.(*ackError)
	require.True(t, ok)
	assert.Equal(t, AckPermission, ae.Code)
}

func TestCmdSaveDefaultsToCreateMode(t *testing.T) {
	lib := &fakeTestLibrary{}
	q := &fakeQueue{items: []QueueItem{{Path: "a.flac"}, {Path: "b.flac"}}}
	s := newHandlerTestServer(nil, q, lib, nil, Config{AllowModifyingStoredPlaylists: true})

	_, err := cmdSave(s, nil, []string{"mix"})
	require.NoError(t, err)
	assert.Equal(t, "mix", lib.savedName)
	assert.Equal(t, []string{"a.flac", "b.flac"}, lib.savedItems)
	assert.Equal(t, SaveCreate, lib.savedMode)
}

func TestCmdSaveAcceptsAppendMode(t *testing.T) {
	lib := &fakeTestLibrary{}
	q := &fakeQueue{}
	s := newHandlerTestServer(nil, q, lib, nil, Config{AllowModifyingStoredPlaylists: true})

	_, err := cmdSave(s, nil, []string{"mix", "append"})
	require.NoError(t, err)
	assert.Equal(t, SaveAppend, lib.savedMode)
}

func TestCmdSaveRejectsUnknownMode(t *testing.T) {
	lib := &fakeTestLibrary{}
	s := newHandlerTestServer(nil, &fakeQueue{}, lib, nil, Config{AllowModifyingStoredPlaylists: true})

	_, err := cmdSave(s, nil, []string{"mix", "bogus"})
	ae, ok := err.(*ackError)
	require.True(t, ok)
	assert.Equal(t, AckArg, ae.Code)
}
