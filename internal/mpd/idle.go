package mpd

import "strings"

// handleIdle implements component G's idle arm: set idle_mask from the named
// classes (all classes if none given), then either drain immediately
// (pending_events intersects idle_mask) or park the client with no
// terminator written.
func (s *Server) handleIdle(c *clientContext, args []string) {
	c.mu.Lock()
	mask := EventMask(0)
	if len(args) == 0 {
		mask = EventAll
	} else {
		for _, a := range args {
			if m, ok := eventByName[strings.ToLower(a)]; ok {
				mask |= m
			}
		}
	}
	c.idleMask = mask
	c.idleActive = true

	if c.pending&c.idleMask != 0 {
		s.drainIdleLocked(c)
		c.mu.Unlock()
		c.flush()
		return
	}
	c.mu.Unlock()
	// Parked: no terminator, no further processing of this unit.
}

// handleNoIdle implements noidle: drain if pending events exist, else emit a
// bare OK. Always clears idle_active.
func (s *Server) handleNoIdle(c *clientContext) {
	c.mu.Lock()
	if c.pending != 0 {
		s.drainIdleLocked(c)
		c.mu.Unlock()
		c.flush()
		return
	}
	c.idleActive = false
	c.mu.Unlock()
	c.w.WriteString("OK\n")
}

// drainIdleLocked appends the changed: lines for pending&idleMask (in
// canonical order) followed by OK, then clears idle state. Caller holds c.mu.
func (s *Server) drainIdleLocked(c *clientContext) {
	deliver := c.pending & c.idleMask
	for _, e := range eventOrder {
		if deliver&e.mask != 0 {
			c.w.WriteString("changed: " + e.name + "\n")
		}
	}
	c.w.WriteString("OK\n")
	c.idleActive = false
	c.idleMask = 0
	c.pending = 0
}

// onBusEvent is the listener bus callback registered once per client. It
// always runs on the engine goroutine (the bus marshals Publish calls there),
// so it may write directly to the client's connection.
func (s *Server) onBusEvent(c *clientContext, mask EventMask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if !c.idleActive {
		c.pending |= mask
		return
	}
	if mask&c.idleMask == 0 {
		c.pending |= mask
		return
	}
	c.pending |= mask
	s.drainIdleLocked(c)
	c.flush()
}
