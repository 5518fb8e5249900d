// Package bus implements the cross-thread listener bus the protocol engine's
// idle notifier hangs off of. Publish may be called from any goroutine --
// the library scanner, the player's timer, an HTTP handler; it marshals the
// event mask onto the engine's own command queue so every subscriber
// callback still runs on the connection engine's goroutine, never
// concurrently with connection I/O.
package bus

import (
	"sync"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

// Bus is a concrete mpd.ListenerBus. engineCh is the same command queue the
// connection engine drains; Register/Publish never touch it directly --
// Publish enqueues one fan-out closure, which only then invokes subscriber
// callbacks from the engine goroutine.
type Bus struct {
	engineCh chan func()

	mu     sync.Mutex
	nextID int
	subs   map[int]func(mpd.EventMask)
}

// New creates a Bus that marshals onto engineCh. engineCh must be the same
// channel the Server's engine loop reads from.
func New(engineCh chan func()) *Bus {
	return &Bus{engineCh: engineCh, subs: make(map[int]func(mpd.EventMask))}
}

// Register adds cb to the fan-out list and returns a function that removes
// it again. Safe to call from any goroutine.
func (b *Bus) Register(cb func(mpd.EventMask)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = cb
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish enqueues a fan-out of mask to every registered callback, to run on
// the engine goroutine. Safe to call from any goroutine, including the engine
// goroutine itself (the queue is buffered so a handler-triggered Publish
// does not deadlock against its own in-flight closure).
func (b *Bus) Publish(mask mpd.EventMask) {
	b.mu.Lock()
	cbs := make([]func(mpd.EventMask), 0, len(b.subs))
	for _, cb := range b.subs {
		cbs = append(cbs, cb)
	}
	b.mu.Unlock()

	b.engineCh <- func() {
		for _, cb := range cbs {
			cb(mask)
		}
	}
}
