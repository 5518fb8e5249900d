package mpd

import (
	"strconv"
	"strings"
)

// cmdList implements `list TAG [filter] [group ...]`: enumerate distinct tag
// values, or (legacy 3-token form: `list album ARTIST`) albums under an
// implicit equality filter on the artist tag, a compatibility quirk real MPD
// clients still rely on.
func cmdList(s *Server, c *clientContext, argv []string) (string, error) {
	tag, ok := findTag(argv[0])
	if !ok || tag.Kind == KindSpecial {
		return "", ackErrorf(AckArg, "unknown tag type %q", argv[0])
	}

	rest := argv[1:]
	legacyFilter := ""
	if len(rest) == 1 && !looksLikeModernFilter(rest[0]) {
		// Bare legacy shorthand `list album ARTIST`: a lone token that is not
		// a modern filter expression is an artist value. It is accepted only
		// after `album`, and only when it is not itself a tag name.
		if _, isTag := findTag(rest[0]); isTag || !strings.EqualFold(tag.ProtocolName, "album") {
			return "", ackErrorf(AckArg, "not enough arguments")
		}
		legacyFilter, _ = parseLegacyPair("artist", rest[0], true)
		rest = nil
	}

	qp := parseCommandParams(rest, AllowFilter|AllowGroup|AllowSort, false)
	if legacyFilter != "" {
		qp.Filter = legacyFilter
	}
	groups, err := s.Library.QueryGroups(qp, tag)
	if err != nil {
		return "", err
	}
	var w strings.Builder
	for _, g := range groups {
		w.WriteString(tag.ProtocolName + ": " + g.Value + "\n")
		for _, grp := range qp.Groups {
			if v, ok := g.Groups[grp.ProtocolName]; ok {
				w.WriteString(grp.ProtocolName + ": " + v + "\n")
			}
		}
	}
	return w.String(), nil
}

// cmdCount reports the song count and total playtime matching a filter.
func cmdCount(s *Server, c *clientContext, argv []string) (string, error) {
	qp := parseCommandParams(argv, AllowFilter|AllowGroup, true)
	n, ms, err := s.Library.CountFiles(qp)
	if err != nil {
		return "", err
	}
	var w strings.Builder
	w.WriteString("songs: " + strconv.Itoa(n) + "\n")
	w.WriteString("playtime: " + strconv.Itoa(int(ms/1000)) + "\n")
	return w.String(), nil
}

func (s *Server) renderFiles(rows []FileRow) string {
	var w strings.Builder
	for _, row := range rows {
		s.renderSong(&w, row, -1, -1)
	}
	return w.String()
}

// cmdFind is an exact-match (case-sensitive) library query.
func cmdFind(s *Server, c *clientContext, argv []string) (string, error) {
	qp := parseCommandParams(argv, AllowFilter|AllowSort|AllowWindow, true)
	rows, err := s.Library.QueryFiles(qp)
	if err != nil {
		return "", err
	}
	return s.renderFiles(rows), nil
}

// cmdFindAdd runs find and appends every matching row to the queue.
func cmdFindAdd(s *Server, c *clientContext, argv []string) (string, error) {
	qp := parseCommandParams(argv, AllowFilter|AllowSort|AllowWindow|AllowPosition, true)
	rows, err := s.Library.QueryFiles(qp)
	if err != nil {
		return "", err
	}
	return "", s.addRows(rows, qp.Position)
}

func (s *Server) addRows(rows []FileRow, pos *Position) error {
	for _, row := range rows {
		if _, err := s.Queue.Add(row.VirtualPath, pos); err != nil {
			return err
		}
		if pos != nil {
			next := pos.Resolve(s.Queue.CurrentPos()) + 1
			p := Position{Kind: PosAbsolute, Value: next}
			pos = &p
		}
	}
	return nil
}

// cmdSearch is a case-insensitive substring library query.
func cmdSearch(s *Server, c *clientContext, argv []string) (string, error) {
	qp := parseCommandParams(argv, AllowFilter|AllowSort|AllowWindow, false)
	rows, err := s.Library.QueryFiles(qp)
	if err != nil {
		return "", err
	}
	return s.renderFiles(rows), nil
}

// cmdSearchAdd runs search and appends every matching row to the queue.
func cmdSearchAdd(s *Server, c *clientContext, argv []string) (string, error) {
	qp := parseCommandParams(argv, AllowFilter|AllowSort|AllowWindow|AllowPosition, false)
	rows, err := s.Library.QueryFiles(qp)
	if err != nil {
		return "", err
	}
	return "", s.addRows(rows, qp.Position)
}

// cmdUpdate triggers a rescan; rescan is its alias (this engine has no
// separate metadata-only-vs-full-rescan distinction).
func cmdUpdate(s *Server, c *clientContext, argv []string) (string, error) {
	uri := ""
	if len(argv) > 0 {
		uri = argv[0]
	}
	if err := s.Library.Rescan(uri); err != nil {
		return "", err
	}
	return "updating_db: 1\n", nil
}

// cmdLsInfo and cmdListAll both enumerate files under an optional path
// prefix; this engine does not distinguish lsinfo's one-level listing from
// listall's recursive one, since the library is a flat virtual namespace
// rather than a real directory tree.
func cmdLsInfo(s *Server, c *clientContext, argv []string) (string, error) {
	prefix := ""
	if len(argv) > 0 {
		prefix = strings.Trim(argv[0], "/")
	}
	rows, err := s.Library.FilesByPrefix(prefix)
	if err != nil {
		return "", err
	}
	return s.renderFiles(rows), nil
}

func cmdListAll(s *Server, c *clientContext, argv []string) (string, error) {
	return cmdLsInfo(s, c, argv)
}
