package library

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
	"github.com/gabriel-vasile/mimetype"
)

// Get implements mpd.Artwork: embedded picture first (cached in the blobs
// table so repeated albumart/readpicture calls don't re-decode the whole
// file), falling back to a cover.* sidecar sniffed with
// github.com/gabriel-vasile/mimetype when nothing is embedded.
func (l *Library) Get(virtualPath string) ([]byte, string, bool) {
	if data, mime, ok := l.cachedArtwork(virtualPath); ok {
		return data, mime, true
	}

	row, ok := l.FileByVirtualPath(virtualPath)
	if !ok {
		return nil, "", false
	}
	realPath := filepath.Join(l.root, filepath.FromSlash(row.VirtualPath))

	if data, mime, ok := embeddedPicture(realPath); ok {
		l.cacheArtwork(virtualPath, data, mime)
		return data, mime, true
	}

	if data, mime, ok := sidecarCover(filepath.Dir(realPath)); ok {
		l.cacheArtwork(virtualPath, data, mime)
		return data, mime, true
	}

	return nil, "", false
}

func embeddedPicture(realPath string) ([]byte, string, bool) {
	f, err := os.Open(realPath)
	if err != nil {
		return nil, "", false
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, "", false
	}
	pic := m.Picture()
	if pic == nil || len(pic.Data) == 0 {
		return nil, "", false
	}
	mime := pic.MIMEType
	if mime == "" {
		mime = mimetype.Detect(pic.Data).String()
	}
	return pic.Data, mime, true
}

var coverNames = []string{"cover.jpg", "cover.jpeg", "cover.png", "folder.jpg", "front.jpg"}

func sidecarCover(dir string) ([]byte, string, bool) {
	for _, name := range coverNames {
		p := filepath.Join(dir, name)
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return data, mimetype.Detect(data).String(), true
	}
	return nil, "", false
}

func (l *Library) cachedArtwork(virtualPath string) ([]byte, string, bool) {
	var data []byte
	var mime string
	err := l.db.sql.QueryRow("SELECT data, mime FROM blobs WHERE virtual_path = ?", virtualPath).Scan(&data, &mime)
	if err != nil {
		return nil, "", false
	}
	return data, mime, true
}

func (l *Library) cacheArtwork(virtualPath string, data []byte, mime string) {
	l.db.sql.Exec(
		"INSERT INTO blobs (virtual_path, data, mime) VALUES (?, ?, ?) ON CONFLICT(virtual_path) DO UPDATE SET data = excluded.data, mime = excluded.mime",
		virtualPath, data, mime,
	)
}
