package mpd

import "strconv"

func parseIntArg(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ackErrorf(AckArg, "not a number: %q", tok)
	}
	return n, nil
}

func parseFloatArg(tok string) (float64, error) {
	n, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ackErrorf(AckArg, "not a number: %q", tok)
	}
	return n, nil
}

func parseBoolArg(tok string) (bool, error) {
	switch tok {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, ackErrorf(AckArg, "boolean (0/1) expected: %q", tok)
}

// cmdPlay starts playback, optionally at a given queue position.
func cmdPlay(s *Server, c *clientContext, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", s.Player.Play(nil)
	}
	n, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.Play(&n)
}

// cmdPlayID starts playback at a queue-item id.
func cmdPlayID(s *Server, c *clientContext, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", s.Player.PlayID(nil)
	}
	n, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.PlayID(&n)
}

func cmdStop(s *Server, c *clientContext, argv []string) (string, error) {
	return "", s.Player.Stop()
}

// cmdPause toggles by default, or forces the given 0/1 state.
func cmdPause(s *Server, c *clientContext, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", s.Player.Pause(nil)
	}
	b, err := parseBoolArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.Pause(&b)
}

func cmdNext(s *Server, c *clientContext, argv []string) (string, error) {
	return "", s.Player.Next()
}

func cmdPrevious(s *Server, c *clientContext, argv []string) (string, error) {
	return "", s.Player.Previous()
}

func cmdSeek(s *Server, c *clientContext, argv []string) (string, error) {
	pos, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	secs, err := parseFloatArg(argv[1])
	if err != nil {
		return "", err
	}
	return "", s.Player.Seek(pos, secs)
}

func cmdSeekID(s *Server, c *clientContext, argv []string) (string, error) {
	id, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	secs, err := parseFloatArg(argv[1])
	if err != nil {
		return "", err
	}
	return "", s.Player.SeekID(id, secs)
}

// cmdSeekCur seeks the current item; a leading +/- makes the offset relative.
func cmdSeekCur(s *Server, c *clientContext, argv []string) (string, error) {
	tok := argv[0]
	relative := false
	if len(tok) > 0 && (tok[0] == '+' || tok[0] == '-') {
		relative = true
	}
	secs, err := parseFloatArg(tok)
	if err != nil {
		return "", err
	}
	return "", s.Player.SeekCur(secs, relative)
}

func cmdSetVol(s *Server, c *clientContext, argv []string) (string, error) {
	n, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.SetVolume(n)
}

func cmdRepeat(s *Server, c *clientContext, argv []string) (string, error) {
	b, err := parseBoolArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.SetRepeat(b)
}

func cmdRandom(s *Server, c *clientContext, argv []string) (string, error) {
	b, err := parseBoolArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.SetRandom(b)
}

// cmdSingle accepts 0/1/oneshot.
func cmdSingle(s *Server, c *clientContext, argv []string) (string, error) {
	switch argv[0] {
	case "0":
		return "", s.Player.SetSingle(SingleOff)
	case "1":
		return "", s.Player.SetSingle(SingleOn)
	case "oneshot":
		return "", s.Player.SetSingle(SingleOneshot)
	}
	return "", ackErrorf(AckArg, "invalid single mode %q", argv[0])
}

func cmdConsume(s *Server, c *clientContext, argv []string) (string, error) {
	b, err := parseBoolArg(argv[0])
	if err != nil {
		return "", err
	}
	return "", s.Player.SetConsume(b)
}
