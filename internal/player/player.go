// Package player is the in-memory Player/Queue collaborator: it holds queue
// and transport state faithfully enough to exercise the protocol engine
// above it, without decoding or producing any real audio. Queue ordering
// carries a version counter and change history the same way a playlist
// collaborator would, and playback state is a small explicit state machine
// rather than free-floating booleans.
package player

import (
	"sync"
	"time"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

type queueItem struct {
	id       int
	path     string
	addedVer int
}

// Player is the concrete mpd.Player and mpd.Queue implementation.
type Player struct {
	mu sync.Mutex

	library mpd.Library
	bus     mpd.ListenerBus

	items   []queueItem
	nextID  int
	version int
	current int // index into items, -1 if none

	state       mpd.PlayState
	elapsed     time.Duration
	lastTick    time.Time
	volume      int
	repeat      bool
	random      bool
	single      mpd.SingleMode
	consume     bool

	outputs []mpd.Output

	stopTicker chan struct{}
}

// New constructs a Player with one default output ("default") plus, when
// httpdPlugin is true, a second pseudo "httpd" streaming output appended at
// the end.
func New(library mpd.Library, bus mpd.ListenerBus, httpdPlugin bool) *Player {
	p := &Player{
		library: library,
		bus:     bus,
		current: -1,
		volume:  100,
		outputs: []mpd.Output{
			{ID: 0, Name: "default", Plugin: "default", Enabled: true, Volume: -1},
		},
		stopTicker: make(chan struct{}),
	}
	if httpdPlugin {
		p.outputs = append(p.outputs, mpd.Output{ID: 1, Name: "httpd", Plugin: "httpd", Enabled: true, Volume: -1})
	}
	go p.tick()
	return p
}

// Close stops the internal elapsed-time ticker.
func (p *Player) Close() { close(p.stopTicker) }

func (p *Player) tick() {
	t := time.NewTicker(500 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			p.mu.Lock()
			if p.state == mpd.StatePlay {
				now := time.Now()
				p.elapsed += now.Sub(p.lastTick)
				p.lastTick = now
				dur := p.currentDurationLocked()
				if dur > 0 && p.elapsed >= dur {
					p.advanceLocked(false)
				}
			}
			p.mu.Unlock()
		case <-p.stopTicker:
			return
		}
	}
}

func (p *Player) bumpVersion(mask mpd.EventMask) {
	p.version++
	if p.bus != nil {
		p.bus.Publish(mask)
	}
}

func (p *Player) currentDurationLocked() time.Duration {
	if p.current < 0 || p.current >= len(p.items) {
		return 0
	}
	if p.library == nil {
		return 0
	}
	row, ok := p.library.FileByVirtualPath(p.items[p.current].path)
	if !ok {
		return 0
	}
	return time.Duration(row.DurationMS) * time.Millisecond
}

// advanceLocked moves to the next item, honoring single/repeat/consume, and
// starts it playing. Caller holds p.mu.
func (p *Player) advanceLocked(manual bool) {
	if p.consume && p.current >= 0 && p.current < len(p.items) {
		p.removeAtLocked(p.current)
	} else {
		p.current++
	}

	if p.single == mpd.SingleOn || p.single == mpd.SingleOneshot {
		if manual {
			// explicit next/previous still advances past single
		} else if p.current < len(p.items) {
			p.current-- // stay on the same (single) item when it ends naturally
		}
	}

	if p.current >= len(p.items) {
		if p.repeat && len(p.items) > 0 {
			p.current = 0
		} else {
			p.current = -1
			p.state = mpd.StateStop
			p.elapsed = 0
			p.bus.Publish(mpd.EventPlayer)
			return
		}
	}
	p.elapsed = 0
	p.lastTick = time.Now()
	p.state = mpd.StatePlay
	p.bus.Publish(mpd.EventPlayer)
}

func (p *Player) removeAtLocked(i int) {
	p.items = append(p.items[:i], p.items[i+1:]...)
}
