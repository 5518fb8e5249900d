package mpd

import (
	"log"
	"net"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Config is the subset of the configuration file's keys the connection
// engine itself needs; the rest (ports, httpd port) are consumed by
// cmd/mpdengine when deciding what to start.
type Config struct {
	PasswordHash                 []byte // empty: auth disabled, any/no password succeeds
	AllowModifyingStoredPlaylists bool
	DefaultPlaylistDirectory     string
	EnableHTTPDPlugin            bool
}

// Server owns the command-queue-serialized connection engine (component E)
// plus the command/tag registries and the collaborator handles every handler
// needs. All fields below engineCh are only ever touched from the engine
// goroutine (run()); everything else communicates by enqueuing a closure.
type Server struct {
	ln net.Listener

	Player  Player
	Queue   Queue
	Library Library
	Artwork Artwork
	Bus     ListenerBus

	cfg Config

	engineCh chan func()
	quit     chan struct{}

	clients  map[int]*clientContext
	nextID   int

	tagTypesMu  sync.RWMutex
	enabledTags map[string]bool
}

// NewServer builds a Server around its collaborators. Start call Serve to
// begin accepting connections.
func NewServer(player Player, queue Queue, library Library, artwork Artwork, eventBus ListenerBus, cfg Config) *Server {
	s := &Server{
		Player:      player,
		Queue:       queue,
		Library:     library,
		Artwork:     artwork,
		Bus:         eventBus,
		cfg:         cfg,
		engineCh:    make(chan func(), 256),
		quit:        make(chan struct{}),
		clients:     make(map[int]*clientContext),
		enabledTags: make(map[string]bool),
	}
	for _, t := range listableTags() {
		s.enabledTags[strings.ToLower(t.ProtocolName)] = true
	}
	return s
}

// EngineQueue exposes the shared command queue so a bus.Bus can be
// constructed to marshal onto the same goroutine as this server's engine
// loop.
func (s *Server) EngineQueue() chan func() { return s.engineCh }

// Serve listens on addr, runs the engine loop, and accepts connections until
// Stop is called.
func (s *Server) Serve(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.ln = ln
	go s.run()
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and tears down every connected client by closing
// each client's connection from the engine goroutine.
func (s *Server) Stop() {
	if s.ln != nil {
		s.ln.Close()
	}
	done := make(chan struct{})
	s.engineCh <- func() {
		for _, c := range s.clients {
			c.conn.Close()
		}
		close(done)
	}
	<-done
	close(s.quit)
}

func (s *Server) run() {
	for {
		select {
		case fn := <-s.engineCh:
			fn()
		case <-s.quit:
			return
		}
	}
}

// submit enqueues fn to run on the engine goroutine and blocks until it has.
func (s *Server) submit(fn func()) {
	done := make(chan struct{})
	s.engineCh <- func() {
		fn()
		close(done)
	}
	<-done
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	var c *clientContext
	var unregister func()

	s.submit(func() {
		s.nextID++
		c = newClientContext(s.nextID, conn, len(s.cfg.PasswordHash) == 0)
		s.clients[c.id] = c
		c.w.WriteString("OK MPD 0.24.0\n")
		c.flush()
		unregister = s.Bus.Register(func(mask EventMask) { s.onBusEvent(c, mask) })
	})

	units := splitCompleteUnits(conn)
	for lines := range units {
		if c.closed {
			break
		}
		s.submit(func() { s.processUnit(c, lines) })
		if c.closed {
			break
		}
	}

	s.submit(func() {
		if unregister != nil {
			unregister()
		}
		delete(s.clients, c.id)
	})
	conn.Close()
	log.Printf("mpd: client %d disconnected", c.id)
}

// checkPassword compares candidate against the configured password hash.
// An unconfigured password accepts anything.
func (s *Server) checkPassword(candidate string) bool {
	if len(s.cfg.PasswordHash) == 0 {
		return true
	}
	return bcrypt.CompareHashAndPassword(s.cfg.PasswordHash, []byte(candidate)) == nil
}
