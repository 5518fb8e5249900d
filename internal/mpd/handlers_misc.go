package mpd

import (
	"strconv"
	"strings"
)

// cmdSticker emulates MPD's generic sticker store with a single built-in
// "rating" name backed by the library's rating column: there is no
// arbitrary sticker namespace, only the one the library schema already
// carries.
func cmdSticker(s *Server, c *clientContext, argv []string) (string, error) {
	op := strings.ToLower(argv[0])
	typ := argv[1]
	uri := argv[2]
	if typ != "song" {
		return "", ackErrorf(AckArg, "unsupported sticker type %q", typ)
	}

	switch op {
	case "get":
		if len(argv) < 4 || argv[3] != "rating" {
			return "", ackErrorf(AckNoExist, "no such sticker")
		}
		rating, ok := s.Library.RatingOf(uri)
		if !ok || rating == 0 {
			return "", ackErrorf(AckNoExist, "no such sticker")
		}
		return "sticker: rating=" + strconv.Itoa(rating/10) + "\n", nil
	case "set":
		if len(argv) < 5 || argv[3] != "rating" {
			return "", ackErrorf(AckArg, "only the rating sticker is supported")
		}
		n, err := strconv.Atoi(argv[4])
		if err != nil {
			return "", ackErrorf(AckArg, "rating must be an integer")
		}
		return "", s.Library.SetRating(uri, n)
	case "delete":
		return "", s.Library.SetRating(uri, 0)
	case "list":
		rating, ok := s.Library.RatingOf(uri)
		if !ok || rating == 0 {
			return "", nil
		}
		return "sticker: rating=" + strconv.Itoa(rating/10) + "\n", nil
	}
	return "", ackErrorf(AckArg, "unsupported sticker operation %q", op)
}

// cmdAlbumArt backs both `albumart` and `readpicture`: resolve the path to a
// library row, fetch its artwork, and frame the requested chunk.
func cmdAlbumArt(s *Server, c *clientContext, argv []string) (string, error) {
	path := argv[0]
	offset, err := parseIntArg(argv[1])
	if err != nil {
		return "", err
	}
	data, mime, ok := s.Artwork.Get(path)
	if !ok {
		return "", ackErrorf(AckNoExist, "no art for %q", path)
	}
	var w strings.Builder
	if mime != "" {
		w.WriteString("type: " + mime + "\n")
	}
	if err := writeBinaryResponse(&w, data, offset, c.binaryLimit); err != nil {
		return "", err
	}
	return w.String(), nil
}

// channelNames are the fixed client-to-client channels this engine
// recognizes; there is no arbitrary channel registry, just these three
// built-ins.
var channelNames = []string{"outputvolume", "pairing", "verification"}

// cmdChannels, cmdSendMessage, cmdReadMessages implement the client-to-client
// messaging surface. Only `outputvolume` does anything: its message body is
// `<shortid>:<volume>`, routed straight to the matching output's volume
// control. `pairing` and `verification` are accepted and otherwise ignored,
// and nothing is ever queued for `readmessages` to return since this engine
// has no other client to receive from.
func cmdChannels(s *Server, c *clientContext, argv []string) (string, error) {
	var w strings.Builder
	for _, name := range channelNames {
		w.WriteString("channel: " + name + "\n")
	}
	return w.String(), nil
}

func cmdSendMessage(s *Server, c *clientContext, argv []string) (string, error) {
	channel, text := argv[0], argv[1]
	if channel != "outputvolume" {
		return "", nil
	}
	parts := strings.SplitN(text, ":", 2)
	if len(parts) != 2 {
		return "", nil
	}
	id, err1 := strconv.Atoi(parts[0])
	vol, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return "", nil
	}
	return "", s.Player.SetOutputVolume(id, vol)
}

func cmdReadMessages(s *Server, c *clientContext, argv []string) (string, error) {
	return "", nil
}

// cmdBinaryLimit sets the per-connection chunk size future binary responses
// use; the protocol requires at least 64 bytes.
func cmdBinaryLimit(s *Server, c *clientContext, argv []string) (string, error) {
	n, err := parseIntArg(argv[0])
	if err != nil {
		return "", err
	}
	if n < 64 {
		return "", ackErrorf(AckArg, "binary limit must be >= 64")
	}
	c.binaryLimit = n
	return "", nil
}
