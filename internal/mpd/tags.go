package mpd

import "strings"

// tagTable is the static, case-insensitive tag registry (component A). Artist
// is deliberately mapped to the album_artist field to reuse that column's
// index; Name aliases Title. The four SPECIAL entries carry no DB field and
// are resolved entirely inside the filter parser.
var tagTable = []TagEntry{
	{ProtocolName: "Artist", DBField: "album_artist", SortExpr: "album_artist", GroupField: "album_artist", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "ArtistSort", DBField: "album_artist_sort", SortExpr: "album_artist_sort", GroupField: "album_artist_sort", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Album", DBField: "album", SortExpr: "album", GroupField: "album_id", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "AlbumSort", DBField: "album_sort", SortExpr: "album_sort", GroupField: "album_id", Kind: KindString, GroupRequiredInList: false},
	{ProtocolName: "AlbumArtist", DBField: "album_artist", SortExpr: "album_artist", GroupField: "album_artist", Kind: KindString, GroupRequiredInList: false},
	{ProtocolName: "AlbumArtistSort", DBField: "album_artist_sort", SortExpr: "album_artist_sort", GroupField: "album_artist_sort", Kind: KindString, GroupRequiredInList: false},
	{ProtocolName: "Title", DBField: "title", SortExpr: "title", GroupField: "title", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Name", DBField: "title", SortExpr: "title", GroupField: "title", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Genre", DBField: "genre", SortExpr: "genre", GroupField: "genre", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Date", DBField: "year", SortExpr: "year", GroupField: "year", Kind: KindInt, GroupRequiredInList: true},
	{ProtocolName: "OriginalDate", DBField: "original_year", SortExpr: "original_year", GroupField: "original_year", Kind: KindInt, GroupRequiredInList: true},
	{ProtocolName: "Composer", DBField: "composer", SortExpr: "composer", GroupField: "composer", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Performer", DBField: "performer", SortExpr: "performer", GroupField: "performer", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Conductor", DBField: "conductor", SortExpr: "conductor", GroupField: "conductor", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Work", DBField: "work", SortExpr: "work", GroupField: "work", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Grouping", DBField: "grp", SortExpr: "grp", GroupField: "grp", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Comment", DBField: "comment", SortExpr: "comment", GroupField: "comment", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "Disc", DBField: "disc", SortExpr: "disc", GroupField: "disc", Kind: KindInt, GroupRequiredInList: true},
	{ProtocolName: "Label", DBField: "label", SortExpr: "label", GroupField: "label", Kind: KindString, GroupRequiredInList: true},
	{ProtocolName: "MUSICBRAINZ_TRACKID", DBField: "mb_trackid", SortExpr: "mb_trackid", GroupField: "mb_trackid", Kind: KindString, GroupRequiredInList: false},
	{ProtocolName: "MUSICBRAINZ_ALBUMID", DBField: "mb_albumid", SortExpr: "mb_albumid", GroupField: "mb_albumid", Kind: KindString, GroupRequiredInList: false},
	{ProtocolName: "MUSICBRAINZ_ARTISTID", DBField: "mb_artistid", SortExpr: "mb_artistid", GroupField: "mb_artistid", Kind: KindString, GroupRequiredInList: false},

	// SPECIAL pseudo-tags: no DB field, interpreted directly by the filter parser.
	{ProtocolName: "file", Kind: KindSpecial},
	{ProtocolName: "base", Kind: KindSpecial},
	{ProtocolName: "any", Kind: KindSpecial},
	{ProtocolName: "modified-since", Kind: KindSpecial},
}

var tagByName map[string]TagEntry

func init() {
	tagByName = make(map[string]TagEntry, len(tagTable))
	for _, t := range tagTable {
		tagByName[strings.ToLower(t.ProtocolName)] = t
	}
}

// findTag looks up a protocol tag name case-insensitively. ok is false for an
// unrecognized name.
func findTag(name string) (TagEntry, bool) {
	t, ok := tagByName[strings.ToLower(name)]
	return t, ok
}

// listableTags returns the tag table in declaration order, used by `tagtypes`
// default-enabled-set and similar reflective commands.
func listableTags() []TagEntry {
	out := make([]TagEntry, 0, len(tagTable))
	for _, t := range tagTable {
		if t.Kind == KindSpecial {
			continue
		}
		out = append(out, t)
	}
	return out
}
