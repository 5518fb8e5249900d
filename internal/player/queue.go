package player

import (
	"github.com/aldenstone/mpdengine/internal/mpd"
)

// Version returns the queue's change-sequence number.
func (p *Player) Version() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.version
}

// Items returns a snapshot of the queue in position order.
func (p *Player) Items() []mpd.QueueItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]mpd.QueueItem, len(p.items))
	for i, it := range p.items {
		out[i] = mpd.QueueItem{ID: it.id, Pos: i, Path: it.path, AddedVer: it.addedVer}
	}
	return out
}

// CurrentPos returns the currently playing/paused position, or 0 if stopped
// or no current item.
func (p *Player) CurrentPos() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current < 0 || p.current >= len(p.items) {
		return 0
	}
	return p.current
}

// Add inserts path at pos (nil means append) and returns its queue-item id.
func (p *Player) Add(path string, pos *mpd.Position) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	it := queueItem{id: p.nextID, path: path, addedVer: p.version + 1}

	at := len(p.items)
	if pos != nil {
		at = pos.Resolve(p.currentPosLocked())
		if at < 0 {
			at = 0
		}
		if at > len(p.items) {
			at = len(p.items)
		}
	}
	p.items = append(p.items, queueItem{})
	copy(p.items[at+1:], p.items[at:])
	p.items[at] = it
	if at <= p.current {
		p.current++
	}
	p.bumpVersion(mpd.EventQueue)
	return it.id, nil
}

func (p *Player) currentPosLocked() int {
	if p.current < 0 || p.current >= len(p.items) {
		return 0
	}
	return p.current
}

// Delete removes the item at a resolved position.
func (p *Player) Delete(pos mpd.Position) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	idx := pos.Resolve(p.currentPosLocked())
	if idx < 0 || idx >= len(p.items) {
		return mpd.ErrNoExist
	}
	p.removeAtLocked(idx)
	p.adjustCurrentAfterRemoveLocked(idx)
	p.bumpVersion(mpd.EventQueue)
	return nil
}

// DeleteRange removes items in [start,end).
func (p *Player) DeleteRange(start, end int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if start < 0 || end < start || end > len(p.items) {
		return mpd.ErrNoExist
	}
	p.items = append(p.items[:start], p.items[end:]...)
	if p.current >= start {
		if p.current < end {
			p.current = start
		} else {
			p.current -= end - start
		}
	}
	p.bumpVersion(mpd.EventQueue)
	return nil
}

// DeleteID removes the item with the given queue-item id.
func (p *Player) DeleteID(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, it := range p.items {
		if it.id == id {
			p.removeAtLocked(i)
			p.adjustCurrentAfterRemoveLocked(i)
			p.bumpVersion(mpd.EventQueue)
			return nil
		}
	}
	return mpd.ErrNoExist
}

func (p *Player) adjustCurrentAfterRemoveLocked(removedIdx int) {
	if removedIdx < p.current {
		p.current--
	} else if removedIdx == p.current {
		p.state = mpd.StateStop
		p.elapsed = 0
	}
}

// Clear empties the queue.
func (p *Player) Clear() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = nil
	p.current = -1
	p.state = mpd.StateStop
	p.elapsed = 0
	p.bumpVersion(mpd.EventQueue)
	return nil
}

// Move relocates items in [start,end) so the first one lands at to. Refuses
// if to falls inside [start,end).
func (p *Player) Move(start, end, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if start < 0 || end <= start || end > len(p.items) {
		return mpd.ErrArg
	}
	if to >= start && to < end {
		return mpd.ErrArg
	}
	moved := append([]queueItem{}, p.items[start:end]...)
	rest := append(append([]queueItem{}, p.items[:start]...), p.items[end:]...)
	if to < 0 {
		to = 0
	}
	if to > len(rest) {
		to = len(rest)
	}
	out := make([]queueItem, 0, len(p.items))
	out = append(out, rest[:to]...)
	out = append(out, moved...)
	out = append(out, rest[to:]...)
	p.items = out
	p.bumpVersion(mpd.EventQueue)
	return nil
}

// MoveID relocates the item with the given id to position to.
func (p *Player) MoveID(id, to int) error {
	p.mu.Lock()
	idx := -1
	for i, it := range p.items {
		if it.id == id {
			idx = i
			break
		}
	}
	p.mu.Unlock()
	if idx < 0 {
		return mpd.ErrNoExist
	}
	return p.Move(idx, idx+1, to)
}

// ChangesSince returns the queue items added after version (those whose
// AddedVer exceeds it), at their current positions. Items that were only
// moved, or shifted by an insert or removal elsewhere, are not reported.
func (p *Player) ChangesSince(version int) []mpd.QueueItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []mpd.QueueItem
	for i, it := range p.items {
		if it.addedVer > version {
			out = append(out, mpd.QueueItem{ID: it.id, Pos: i, Path: it.path, AddedVer: it.addedVer})
		}
	}
	return out
}
