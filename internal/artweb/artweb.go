// Package artweb serves library artwork over plain HTTP GET, for clients
// that would rather fetch a cover image with an <img> tag than decode the
// protocol engine's albumart binary framing. go-musicfox's own netease-API
// server (github.com/gin-gonic/gin-backed) shows the same "resolve a
// virtual library path to bytes, set Content-Type, write" shape, adapted
// here to net/http since gin pulls in far more than a single GET route
// needs.
package artweb

import (
	"net/http"
	"strings"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

type handler struct {
	artwork mpd.Artwork
	library mpd.Library
}

// NewHandler builds the artwork GET endpoint. A request to /art/<path>
// strips the final path segment (typically a made-up filename the client
// appended for its own extension-sniffing) and resolves the remainder by
// prefix match against the library, serving the first match's artwork.
func NewHandler(library mpd.Library, artwork mpd.Artwork) http.Handler {
	return &handler{artwork: artwork, library: library}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/art/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		http.NotFound(w, r)
		return
	}

	matches, err := h.library.FilesByPrefix(path)
	if err != nil || len(matches) == 0 {
		http.NotFound(w, r)
		return
	}

	data, mime, ok := h.artwork.Get(matches[0].VirtualPath)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if mime != "" {
		w.Header().Set("Content-Type", mime)
	}
	w.Write(data)
}
