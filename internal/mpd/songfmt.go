package mpd

import (
	"fmt"
	"strings"
	"time"
)

// renderSong writes one file's metadata block: `file:`, `Last-Modified:`,
// `Time:`/`duration:`, the enabled tags in registry order, and -- when pos or
// id is >= 0 -- the queue `Pos:`/`Id:` lines. Shared by currentsong,
// playlistinfo, find/search, and lsinfo.
func (s *Server) renderSong(w *strings.Builder, row FileRow, pos, id int) {
	fmt.Fprintf(w, "file: %s\n", row.VirtualPath)
	if row.TimeModUnix > 0 {
		fmt.Fprintf(w, "Last-Modified: %s\n", time.Unix(row.TimeModUnix, 0).UTC().Format(time.RFC3339))
	}
	if row.DurationMS > 0 {
		secs := float64(row.DurationMS) / 1000
		fmt.Fprintf(w, "Time: %d\n", row.DurationMS/1000)
		fmt.Fprintf(w, "duration: %.3f\n", secs)
	}

	s.tagTypesMu.RLock()
	defer s.tagTypesMu.RUnlock()
	for _, t := range listableTags() {
		if !s.enabledTags[strings.ToLower(t.ProtocolName)] {
			continue
		}
		if v, ok := row.Tags[t.ProtocolName]; ok && v != "" {
			fmt.Fprintf(w, "%s: %s\n", t.ProtocolName, v)
		}
	}
	if pos >= 0 {
		fmt.Fprintf(w, "Pos: %d\n", pos)
	}
	if id >= 0 {
		fmt.Fprintf(w, "Id: %d\n", id)
	}
}
