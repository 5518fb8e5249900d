package player

import "github.com/aldenstone/mpdengine/internal/mpd"

// Outputs returns the stable-ordered output list.
func (p *Player) Outputs() []mpd.Output {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]mpd.Output, len(p.outputs))
	copy(out, p.outputs)
	return out
}

func (p *Player) findOutputLocked(id int) int {
	for i, o := range p.outputs {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// EnableOutput enables the output at index id (the engine's stable
// enumeration index, not a persistent speaker id -- the "short id" of the
// glossary).
func (p *Player) EnableOutput(id int) error {
	p.mu.Lock()
	i := p.findOutputLocked(id)
	if i < 0 {
		p.mu.Unlock()
		return mpd.ErrNoExist
	}
	p.outputs[i].Enabled = true
	p.mu.Unlock()
	p.bus.Publish(mpd.EventSpeaker)
	return nil
}

// DisableOutput disables the output at index id.
func (p *Player) DisableOutput(id int) error {
	p.mu.Lock()
	i := p.findOutputLocked(id)
	if i < 0 {
		p.mu.Unlock()
		return mpd.ErrNoExist
	}
	p.outputs[i].Enabled = false
	p.mu.Unlock()
	p.bus.Publish(mpd.EventSpeaker)
	return nil
}

// ToggleOutput flips the output's enabled flag.
func (p *Player) ToggleOutput(id int) error {
	p.mu.Lock()
	i := p.findOutputLocked(id)
	if i < 0 {
		p.mu.Unlock()
		return mpd.ErrNoExist
	}
	p.outputs[i].Enabled = !p.outputs[i].Enabled
	p.mu.Unlock()
	p.bus.Publish(mpd.EventSpeaker)
	return nil
}

// SetOutputVolume sets a per-output volume, when the output supports one.
func (p *Player) SetOutputVolume(id, v int) error {
	if v < 0 || v > 100 {
		return mpd.ErrArg
	}
	p.mu.Lock()
	i := p.findOutputLocked(id)
	if i < 0 {
		p.mu.Unlock()
		return mpd.ErrNoExist
	}
	p.outputs[i].Volume = v
	p.mu.Unlock()
	p.bus.Publish(mpd.EventVolume)
	return nil
}
