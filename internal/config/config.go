// Package config loads the engine's on-disk/environment configuration: a
// koanf-layered read (YAML file, then MPDENGINE_-prefixed environment
// overrides) of a gopkg.in/yaml.v3-tagged struct, a single-file unmarshal
// widened to a layered koanf.Koanf load in the style of go-musicfox's config
// manager. A fsnotify watch reports rewrites of the file; the running engine
// only logs them and does not re-apply the new values until it restarts.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"
)

// Config is the engine's full on-disk configuration.
type Config struct {
	Listen struct {
		Address string `yaml:"address" koanf:"address"`
	} `yaml:"listen" koanf:"listen"`

	HTTP struct {
		Enabled bool   `yaml:"enabled" koanf:"enabled"`
		Address string `yaml:"address" koanf:"address"`
	} `yaml:"http" koanf:"http"`

	Library struct {
		Root            string `yaml:"root" koanf:"root"`
		DatabasePath    string `yaml:"database_path" koanf:"database_path"`
		PlaylistDir     string `yaml:"playlist_directory" koanf:"playlist_directory"`
		RescanOnStartup bool   `yaml:"rescan_on_startup" koanf:"rescan_on_startup"`
	} `yaml:"library" koanf:"library"`

	Auth struct {
		Password                      string `yaml:"password" koanf:"password"`
		AllowModifyingStoredPlaylists bool   `yaml:"allow_modifying_stored_playlists" koanf:"allow_modifying_stored_playlists"`
	} `yaml:"auth" koanf:"auth"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.Listen.Address = "0.0.0.0:6600"
	c.HTTP.Enabled = false
	c.HTTP.Address = "0.0.0.0:8080"
	c.Library.Root = "./music"
	c.Library.DatabasePath = "./mpdengine.db"
	c.Library.PlaylistDir = "./playlists"
	c.Library.RescanOnStartup = true
	c.Auth.AllowModifyingStoredPlaylists = true
	return c
}

// Load reads path (when non-empty; a missing file is an error), then layers
// MPDENGINE_-prefixed environment variables on top, into a fresh Default().
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("MPDENGINE_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MPDENGINE_")), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	if k.Len() > 0 {
		if err := k.Unmarshal("", cfg); err != nil {
			return nil, fmt.Errorf("config: unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// PasswordHash bcrypt-hashes the configured plaintext password, or returns
// nil when no password is configured (auth disabled).
func (c *Config) PasswordHash() ([]byte, error) {
	if c.Auth.Password == "" {
		return nil, nil
	}
	return bcrypt.GenerateFromPassword([]byte(c.Auth.Password), bcrypt.DefaultCost)
}

// Watch calls onChange whenever path is rewritten on disk. The returned
// closer stops the watch; a watch error (e.g. the path's directory missing)
// is returned immediately instead of starting a goroutine.
func Watch(path string, onChange func()) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					onChange()
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w.Close, nil
}
