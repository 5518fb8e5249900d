// Command mpdengine runs the protocol engine as a standalone daemon: load
// configuration, open the library database, wire the collaborators together,
// and serve MPD clients until a signal asks it to stop: flag parsing,
// log.Fatalf on startup failure, os/signal+syscall.SIGTERM shutdown, with no
// hardware target discovery since nothing in this domain talks to hardware.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aldenstone/mpdengine/internal/artweb"
	"github.com/aldenstone/mpdengine/internal/bus"
	"github.com/aldenstone/mpdengine/internal/config"
	"github.com/aldenstone/mpdengine/internal/library"
	"github.com/aldenstone/mpdengine/internal/mpd"
	"github.com/aldenstone/mpdengine/internal/player"
)

var configPath = flag.String("config", getDefaultConfigPath(), "Path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	passwordHash, err := cfg.PasswordHash()
	if err != nil {
		log.Fatalf("Failed to hash configured password: %v", err)
	}

	db, err := library.Open(cfg.Library.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open library database: %v", err)
	}
	defer db.Close()

	// The Server owns the shared engine queue a Bus marshals onto, but a Bus
	// is itself one of the Server's collaborators -- built with a nil Bus
	// first, then patched in once the queue exists.
	lib := library.New(db, cfg.Library.Root, nil)
	srv := mpd.NewServer(nil, nil, lib, lib, nil, mpd.Config{
		PasswordHash:                 passwordHash,
		AllowModifyingStoredPlaylists: cfg.Auth.AllowModifyingStoredPlaylists,
		DefaultPlaylistDirectory:     cfg.Library.PlaylistDir,
		EnableHTTPDPlugin:            cfg.HTTP.Enabled,
	})

	eventBus := bus.New(srv.EngineQueue())
	srv.Bus = eventBus
	lib.SetBus(eventBus)

	p := player.New(lib, eventBus, cfg.HTTP.Enabled)
	defer p.Close()
	srv.Player = p
	srv.Queue = p

	if cfg.Library.RescanOnStartup {
		if err := lib.Rescan(""); err != nil {
			log.Printf("mpdengine: startup rescan: %v", err)
		}
	}

	if err := srv.Serve(cfg.Listen.Address); err != nil {
		log.Fatalf("Failed to start MPD server: %v", err)
	}
	defer srv.Stop()
	log.Printf("mpdengine listening on %s", cfg.Listen.Address)

	var httpServer *http.Server
	if cfg.HTTP.Enabled {
		httpServer = &http.Server{
			Addr:    cfg.HTTP.Address,
			Handler: artweb.NewHandler(lib, lib),
		}
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("mpdengine: artwork http server: %v", err)
			}
		}()
		log.Printf("mpdengine artwork endpoint listening on %s", cfg.HTTP.Address)
	}

	stopWatch, err := config.Watch(*configPath, func() {
		log.Printf("mpdengine: config file changed, restart to apply")
	})
	if err == nil {
		defer stopWatch()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	log.Printf("mpdengine: shutting down")

	if httpServer != nil {
		httpServer.Close()
	}
}

func getDefaultConfigPath() string {
	locations := []string{
		"./mpdengine.yaml",
		"./config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", "mpdengine", "config.yaml"),
		"/etc/mpdengine/config.yaml",
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return "" // no file found: config.Load("") yields Default()
}
