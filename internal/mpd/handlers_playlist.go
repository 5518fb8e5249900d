package mpd

import "strings"

func (s *Server) requireModifiablePlaylists() error {
	if !s.cfg.AllowModifyingStoredPlaylists {
		return ackErrorf(AckPermission, "stored playlist modification is disabled")
	}
	return nil
}

func cmdListPlaylist(s *Server, c *clientContext, argv []string) (string, error) {
	items, err := s.Library.LoadPlaylist(argv[0])
	if err != nil {
		return "", err
	}
	var w strings.Builder
	for _, p := range items {
		w.WriteString("file: " + p + "\n")
	}
	return w.String(), nil
}

func cmdListPlaylistInfo(s *Server, c *clientContext, argv []string) (string, error) {
	items, err := s.Library.LoadPlaylist(argv[0])
	if err != nil {
		return "", err
	}
	var rows []FileRow
	for _, p := range items {
		row, ok := s.Library.FileByVirtualPath(p)
		if !ok {
			row = FileRow{VirtualPath: p}
		}
		rows = append(rows, row)
	}
	return s.renderFiles(rows), nil
}

func cmdListPlaylists(s *Server, c *clientContext, argv []string) (string, error) {
	names, err := s.Library.Playlists()
	if err != nil {
		return "", err
	}
	var w strings.Builder
	for _, n := range names {
		w.WriteString("playlist: " + n + "\n")
	}
	return w.String(), nil
}

// cmdLoad appends a stored playlist's items onto the end of the queue.
func cmdLoad(s *Server, c *clientContext, argv []string) (string, error) {
	items, err := s.Library.LoadPlaylist(argv[0])
	if err != nil {
		return "", err
	}
	for _, p := range items {
		if _, err := s.Queue.Add(p, nil); err != nil {
			return "", err
		}
	}
	return "", nil
}

func cmdPlaylistAdd(s *Server, c *clientContext, argv []string) (string, error) {
	if err := s.requireModifiablePlaylists(); err != nil {
		return "", err
	}
	return "", s.Library.AddToPlaylist(argv[0], argv[1])
}

func cmdRm(s *Server, c *clientContext, argv []string) (string, error) {
	if err := s.requireModifiablePlaylists(); err != nil {
		return "", err
	}
	return "", s.Library.RemovePlaylist(argv[0])
}

// cmdSave stores the current queue as a named playlist; create/append/replace
// is chosen with the same `mode` keyword `save`'s third (optional) argument
// takes in the real daemon.
func cmdSave(s *Server, c *clientContext, argv []string) (string, error) {
	if err := s.requireModifiablePlaylists(); err != nil {
		return "", err
	}
	mode := SaveCreate
	if len(argv) > 1 {
		switch strings.ToLower(argv[1]) {
		case "append":
			mode = SaveAppend
		case "replace":
			mode = SaveReplace
		default:
			return "", ackErrorf(AckArg, "unknown save mode %q", argv[1])
		}
	}
	items := s.Queue.Items()
	paths := make([]string, len(items))
	for i, it := range items {
		paths[i] = it.Path
	}
	return "", s.Library.SavePlaylist(argv[0], paths, mode)
}
