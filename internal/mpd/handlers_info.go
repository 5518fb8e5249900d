package mpd

import (
	"fmt"
	"strings"
)

// cmdCurrentSong reports the queue item currently loaded, if any.
func cmdCurrentSong(s *Server, c *clientContext, argv []string) (string, error) {
	pos := s.Queue.CurrentPos()
	items := s.Queue.Items()
	if pos < 0 || pos >= len(items) {
		return "", nil
	}
	item := items[pos]
	row, ok := s.Library.FileByVirtualPath(item.Path)
	if !ok {
		row = FileRow{VirtualPath: item.Path}
	}
	var w strings.Builder
	s.renderSong(&w, row, item.Pos, item.ID)
	return w.String(), nil
}

// cmdStatus reports transport state, volume, queue length, and the playing
// song's position/id/time.
func cmdStatus(s *Server, c *clientContext, argv []string) (string, error) {
	st := s.Player.Status()
	items := s.Queue.Items()

	var w strings.Builder
	fmt.Fprintf(&w, "volume: %d\n", st.Volume)
	fmt.Fprintf(&w, "repeat: %d\n", boolInt(st.Repeat))
	fmt.Fprintf(&w, "random: %d\n", boolInt(st.Random))
	fmt.Fprintf(&w, "single: %s\n", singleModeString(st.Single))
	fmt.Fprintf(&w, "consume: %d\n", boolInt(st.Consume))
	fmt.Fprintf(&w, "playlist: %d\n", s.Queue.Version())
	fmt.Fprintf(&w, "playlistlength: %d\n", len(items))
	fmt.Fprintf(&w, "mixrampdb: 0.000000\n")
	fmt.Fprintf(&w, "state: %s\n", st.State.String())
	if st.SongPos >= 0 {
		fmt.Fprintf(&w, "song: %d\n", st.SongPos)
		fmt.Fprintf(&w, "songid: %d\n", st.SongID)
		fmt.Fprintf(&w, "time: %d:%d\n", int(st.Elapsed.Seconds()), int(st.Duration.Seconds()))
		fmt.Fprintf(&w, "elapsed: %.3f\n", st.Elapsed.Seconds())
		fmt.Fprintf(&w, "duration: %.3f\n", st.Duration.Seconds())
	}
	if st.NextSongPos >= 0 {
		fmt.Fprintf(&w, "nextsong: %d\n", st.NextSongPos)
		fmt.Fprintf(&w, "nextsongid: %d\n", st.NextSongID)
	}
	if st.BitrateKbps > 0 {
		fmt.Fprintf(&w, "bitrate: %d\n", st.BitrateKbps)
	}
	return w.String(), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func singleModeString(m SingleMode) string {
	switch m {
	case SingleOn:
		return "1"
	case SingleOneshot:
		return "oneshot"
	default:
		return "0"
	}
}

// cmdStats reports library-wide counters and the last rescan time.
func cmdStats(s *Server, c *clientContext, argv []string) (string, error) {
	artists, albums, files, dbUpdate := s.Library.Stats()
	var w strings.Builder
	fmt.Fprintf(&w, "artists: %d\n", artists)
	fmt.Fprintf(&w, "albums: %d\n", albums)
	fmt.Fprintf(&w, "songs: %d\n", files)
	fmt.Fprintf(&w, "uptime: 0\n")
	fmt.Fprintf(&w, "db_playtime: 0\n")
	fmt.Fprintf(&w, "db_update: %d\n", dbUpdate)
	fmt.Fprintf(&w, "playtime: 0\n")
	return w.String(), nil
}

// cmdTagTypes implements `tagtypes` (bare: list enabled) and its
// enable/disable/clear/all/reset subcommands.
func cmdTagTypes(s *Server, c *clientContext, argv []string) (string, error) {
	if len(argv) == 0 {
		s.tagTypesMu.RLock()
		defer s.tagTypesMu.RUnlock()
		var w strings.Builder
		for _, t := range listableTags() {
			if s.enabledTags[strings.ToLower(t.ProtocolName)] {
				fmt.Fprintf(&w, "tagtype: %s\n", t.ProtocolName)
			}
		}
		return w.String(), nil
	}

	sub := strings.ToLower(argv[0])
	s.tagTypesMu.Lock()
	defer s.tagTypesMu.Unlock()
	switch sub {
	case "all":
		for _, t := range listableTags() {
			s.enabledTags[strings.ToLower(t.ProtocolName)] = true
		}
	case "clear":
		for k := range s.enabledTags {
			s.enabledTags[k] = false
		}
	case "reset":
		for _, t := range listableTags() {
			s.enabledTags[strings.ToLower(t.ProtocolName)] = true
		}
	case "disable":
		for _, name := range argv[1:] {
			if t, ok := findTag(name); ok {
				s.enabledTags[strings.ToLower(t.ProtocolName)] = false
			}
		}
	case "enable":
		for _, name := range argv[1:] {
			if t, ok := findTag(name); ok {
				s.enabledTags[strings.ToLower(t.ProtocolName)] = true
			}
		}
	default:
		return "", ackErrorf(AckArg, "unknown tagtypes subcommand %q", sub)
	}
	return "", nil
}

// cmdURLHandlers reports the schemes the engine accepts in `add`/`addid`.
func cmdURLHandlers(s *Server, c *clientContext, argv []string) (string, error) {
	var w strings.Builder
	for _, h := range []string{"file://", "http://", "https://"} {
		fmt.Fprintf(&w, "handler: %s\n", h)
	}
	return w.String(), nil
}

// cmdDecoders reports the static decoder catalog.
func cmdDecoders(s *Server, c *clientContext, argv []string) (string, error) {
	var w strings.Builder
	for _, d := range decoderCatalog {
		fmt.Fprintf(&w, "plugin: %s\n", d.Plugin)
		for _, suf := range d.Suffixes {
			fmt.Fprintf(&w, "suffix: %s\n", suf)
		}
		for _, mt := range d.MimeTypes {
			fmt.Fprintf(&w, "mime_type: %s\n", mt)
		}
	}
	return w.String(), nil
}

// cmdCommands reports every command the current connection is permitted to
// use (password gating aside, every registered command is always listed).
func cmdCommands(s *Server, c *clientContext, argv []string) (string, error) {
	var w strings.Builder
	for _, ce := range commandTable {
		fmt.Fprintf(&w, "command: %s\n", ce.name)
	}
	return w.String(), nil
}

// cmdNotCommands reports nothing: this engine has no permission-restricted
// command subset beyond the password gate itself.
func cmdNotCommands(s *Server, c *clientContext, argv []string) (string, error) {
	return "", nil
}
