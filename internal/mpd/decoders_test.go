package mpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoderSuffixesIncludesCommonFormats(t *testing.T) {
	suffixes := DecoderSuffixes()
	for _, want := range []string{"flac", "mp3", "ogg", "wav"} {
		assert.Containsf(t, suffixes, want, "expected %q among decoder suffixes", want)
	}
}

func TestDecoderSuffixesHasNoDuplicates(t *testing.T) {
	suffixes := DecoderSuffixes()
	seen := make(map[string]bool, len(suffixes))
	for _, s := range suffixes {
		assert.Falsef(t, seen[s], "suffix %q listed more than once", s)
		seen[s] = true
	}
}

func TestDecoderCatalogEntriesCarryAPlugin(t *testing.T) {
	for _, d := range decoderCatalog {
		assert.NotEmptyf(t, d.Plugin, "decoder entry with suffixes %v has no plugin", d.Suffixes)
		assert.NotEmpty(t, d.Suffixes)
	}
}
