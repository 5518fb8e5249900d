package player

import (
	"time"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

// Status returns a snapshot of transport state for the `status` command.
func (p *Player) Status() mpd.PlayerStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	st := mpd.PlayerStatus{
		State:       p.state,
		SongPos:     -1,
		SongID:      -1,
		NextSongPos: -1,
		NextSongID:  -1,
		Volume:      p.volume,
		Repeat:      p.repeat,
		Random:      p.random,
		Single:      p.single,
		Consume:     p.consume,
	}
	if p.current >= 0 && p.current < len(p.items) {
		st.SongPos = p.current
		st.SongID = p.items[p.current].id
		st.Elapsed = p.elapsed
		st.Duration = p.currentDurationLocked()
	}
	if p.current+1 < len(p.items) {
		st.NextSongPos = p.current + 1
		st.NextSongID = p.items[p.current+1].id
	}
	return st
}

func (p *Player) startAtLocked(idx int) {
	if idx < 0 || idx >= len(p.items) {
		p.current = -1
		p.state = mpd.StateStop
		return
	}
	p.current = idx
	p.elapsed = 0
	p.lastTick = time.Now()
	p.state = mpd.StatePlay
}

// Play starts playback at pos, or resumes/starts at 0 when pos is nil: a
// paused player resumes where it left off, a stopped player always restarts
// at the beginning of the queue regardless of where it last was.
func (p *Player) Play(pos *int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pos == nil {
		if p.state == mpd.StatePause && p.current >= 0 && p.current < len(p.items) {
			p.state = mpd.StatePlay
			p.lastTick = time.Now()
		} else {
			p.startAtLocked(0)
		}
	} else {
		if *pos < 0 || *pos >= len(p.items) {
			return mpd.ErrArg
		}
		p.startAtLocked(*pos)
	}
	p.bus.Publish(mpd.EventPlayer)
	return nil
}

// PlayID starts playback at the item with the given id, or resumes when id
// is nil.
func (p *Player) PlayID(id *int) error {
	if id == nil {
		return p.Play(nil)
	}
	p.mu.Lock()
	idx := -1
	for i, it := range p.items {
		if it.id == *id {
			idx = i
			break
		}
	}
	p.mu.Unlock()
	if idx < 0 {
		return mpd.ErrNoExist
	}
	return p.Play(&idx)
}

// Stop halts playback and clears the current item, so a following bare
// `play` restarts at the beginning of the queue rather than resuming.
func (p *Player) Stop() error {
	p.mu.Lock()
	p.state = mpd.StateStop
	p.elapsed = 0
	p.current = -1
	p.mu.Unlock()
	p.bus.Publish(mpd.EventPlayer)
	return nil
}

// Pause toggles by default; set, when non-nil, forces the state.
func (p *Player) Pause(set *bool) error {
	p.mu.Lock()
	if p.state == mpd.StateStop {
		p.mu.Unlock()
		return nil
	}
	want := p.state != mpd.StatePause
	if set != nil {
		want = *set
	}
	if want && p.state == mpd.StatePlay {
		p.state = mpd.StatePause
	} else if !want && p.state == mpd.StatePause {
		p.state = mpd.StatePlay
		p.lastTick = time.Now()
	}
	p.mu.Unlock()
	p.bus.Publish(mpd.EventPlayer)
	return nil
}

// Next advances to the next item and starts it playing.
func (p *Player) Next() error {
	p.mu.Lock()
	if len(p.items) == 0 {
		p.mu.Unlock()
		return mpd.ErrNoExist
	}
	p.advanceLocked(true)
	p.mu.Unlock()
	return nil
}

// Previous moves to the previous item and starts it playing.
func (p *Player) Previous() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.items) == 0 {
		return mpd.ErrNoExist
	}
	if p.current > 0 {
		p.current--
	}
	p.elapsed = 0
	p.lastTick = time.Now()
	p.state = mpd.StatePlay
	p.bus.Publish(mpd.EventPlayer)
	return nil
}

// Seek seeks within the item at pos.
func (p *Player) Seek(pos int, seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if pos != p.current {
		return mpd.ErrArg
	}
	return p.seekCurLocked(seconds, false)
}

// SeekID seeks within the item with the given id.
func (p *Player) SeekID(id int, seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current < 0 || p.current >= len(p.items) || p.items[p.current].id != id {
		return mpd.ErrArg
	}
	return p.seekCurLocked(seconds, false)
}

// SeekCur seeks the current item, absolute or relative.
func (p *Player) SeekCur(seconds float64, relative bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seekCurLocked(seconds, relative)
}

func (p *Player) seekCurLocked(seconds float64, relative bool) error {
	if p.current < 0 {
		return mpd.ErrNoExist
	}
	target := time.Duration(seconds * float64(time.Second))
	if relative {
		target = p.elapsed + target
	}
	if target < 0 {
		target = 0
	}
	p.elapsed = target
	p.lastTick = time.Now()
	if p.state == mpd.StateStop {
		p.state = mpd.StatePlay
	}
	p.bus.Publish(mpd.EventPlayer)
	return nil
}

// SetVolume sets the mixer volume 0-100.
func (p *Player) SetVolume(v int) error {
	if v < 0 || v > 100 {
		return mpd.ErrArg
	}
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
	p.bus.Publish(mpd.EventVolume)
	return nil
}

// SetRepeat sets the repeat mode.
func (p *Player) SetRepeat(on bool) error {
	p.mu.Lock()
	p.repeat = on
	p.mu.Unlock()
	p.bus.Publish(mpd.EventOptions)
	return nil
}

// SetRandom sets the random/shuffle mode.
func (p *Player) SetRandom(on bool) error {
	p.mu.Lock()
	p.random = on
	p.mu.Unlock()
	p.bus.Publish(mpd.EventOptions)
	return nil
}

// SetSingle sets the single-track mode.
func (p *Player) SetSingle(mode mpd.SingleMode) error {
	p.mu.Lock()
	p.single = mode
	p.mu.Unlock()
	p.bus.Publish(mpd.EventOptions)
	return nil
}

// SetConsume sets the consume mode.
func (p *Player) SetConsume(on bool) error {
	p.mu.Lock()
	p.consume = on
	p.mu.Unlock()
	p.bus.Publish(mpd.EventOptions)
	return nil
}
