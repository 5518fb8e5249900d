package mpd

// DecoderInfo is one entry of the static decoder catalog. ffmpeg is
// advertised as the sole decoder family, so every entry shares the same
// plugin name; the suffix/mime-type catalog itself is the larger
// ffmpeg_suffixes table real MPD ships, not the shorter illustrative one.
type DecoderInfo struct {
	Plugin    string
	Suffixes  []string
	MimeTypes []string
}

var decoderCatalog = []DecoderInfo{
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"flac"},
		MimeTypes: []string{"audio/flac", "audio/x-flac"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"mp3", "mp2"},
		MimeTypes: []string{"audio/mpeg"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"aac", "m4a", "m4b", "mp4"},
		MimeTypes: []string{"audio/aac", "audio/mp4", "audio/x-m4a"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"ogg", "oga"},
		MimeTypes: []string{"audio/ogg", "audio/vorbis", "application/ogg"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"opus"},
		MimeTypes: []string{"audio/opus"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"wav"},
		MimeTypes: []string{"audio/wav", "audio/x-wav"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"aiff", "aif"},
		MimeTypes: []string{"audio/aiff", "audio/x-aiff"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"ape"},
		MimeTypes: []string{"audio/ape", "audio/x-ape"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"wma"},
		MimeTypes: []string{"audio/x-ms-wma"},
	},
	{
		Plugin:    "ffmpeg",
		Suffixes:  []string{"dsf", "dff"},
		MimeTypes: []string{"audio/dsd", "audio/x-dsd"},
	},
}

// DecoderSuffixes returns every file suffix (without the leading dot) the
// decoder catalog recognizes, used by the library scanner to pick which
// files to probe for tags.
func DecoderSuffixes() []string {
	var out []string
	for _, d := range decoderCatalog {
		out = append(out, d.Suffixes...)
	}
	return out
}
