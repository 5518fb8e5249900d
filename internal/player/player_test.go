package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldenstone/mpdengine/internal/mpd"
)

// fakeBus is a no-op mpd.ListenerBus that just counts publishes, enough to
// exercise every mutation path without a real engine queue behind it.
type fakeBus struct {
	published []mpd.EventMask
}

func (b *fakeBus) Register(cb func(mpd.EventMask)) func() { return func() {} }
func (b *fakeBus) Publish(mask mpd.EventMask)              { b.published = append(b.published, mask) }

func newTestPlayer() (*Player, *fakeBus) {
	bus := &fakeBus{}
	p := New(nil, bus, false)
	return p, bus
}

func TestNewPlayerStartsStoppedWithDefaultOutput(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	st := p.Status()
	assert.Equal(t, mpd.StateStop, st.State)
	assert.Equal(t, -1, st.SongPos)
	outputs := p.Outputs()
	require.Len(t, outputs, 1)
	assert.Equal(t, "default", outputs[0].Name)
}

func TestNewPlayerAddsHTTPDOutputWhenEnabled(t *testing.T) {
	p := New(nil, &fakeBus{}, true)
	defer p.Close()

	outputs := p.Outputs()
	require.Len(t, outputs, 2)
	assert.Equal(t, "httpd", outputs[1].Name)
}

func TestQueueAddAppendsAndBumpsVersion(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	v0 := p.Version()
	id1, err := p.Add("a.flac", nil)
	require.NoError(t, err)
	id2, err := p.Add("b.flac", nil)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Greater(t, p.Version(), v0)

	items := p.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a.flac", items[0].Path)
	assert.Equal(t, "b.flac", items[1].Path)
	assert.Equal(t, 0, items[0].Pos)
	assert.Equal(t, 1, items[1].Pos)
}

func TestQueueAddAtAbsolutePosition(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	_, _ = p.Add("b.flac", nil)
	pos := mpd.Position{Kind: mpd.PosAbsolute, Value: 0}
	_, err := p.Add("c.flac", &pos)
	require.NoError(t, err)

	items := p.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "c.flac", items[0].Path)
}

func TestQueueDeleteRemovesItemAndShiftsCurrent(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	idB, _ := p.Add("b.flac", nil)
	require.NoError(t, p.Play(nil)) // current = 0, "a.flac"

	require.NoError(t, p.DeleteID(idB))
	items := p.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a.flac", items[0].Path)
}

func TestQueueClearEmptiesItems(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	_, _ = p.Add("b.flac", nil)
	require.NoError(t, p.Clear())
	assert.Empty(t, p.Items())
}

func TestQueueMoveReordersItems(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	_, _ = p.Add("b.flac", nil)
	_, _ = p.Add("c.flac", nil)

	require.NoError(t, p.Move(0, 1, 3))
	items := p.Items()
	paths := []string{items[0].Path, items[1].Path, items[2].Path}
	assert.Equal(t, []string{"b.flac", "c.flac", "a.flac"}, paths)
}

func TestQueueChangesSinceReportsNewerItems(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	v1 := p.Version()
	_, _ = p.Add("b.flac", nil)

	changes := p.ChangesSince(v1)
	require.Len(t, changes, 1)
	assert.Equal(t, "b.flac", changes[0].Path)
}

func TestPlayStartsFirstItemWhenStopped(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	require.NoError(t, p.Play(nil))

	st := p.Status()
	assert.Equal(t, mpd.StatePlay, st.State)
	assert.Equal(t, 0, st.SongPos)
}

func TestPlayRejectsOutOfRangePosition(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	err := p.Play(intPtr(5))
	assert.ErrorIs(t, err, mpd.ErrArg)
}

func TestPauseTogglesPlayState(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	require.NoError(t, p.Play(nil))
	require.NoError(t, p.Pause(nil))
	assert.Equal(t, mpd.StatePause, p.Status().State)

	require.NoError(t, p.Pause(nil))
	assert.Equal(t, mpd.StatePlay, p.Status().State)
}

func TestStopResetsElapsed(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	require.NoError(t, p.Play(nil))
	require.NoError(t, p.SeekCur(30, false))
	require.NoError(t, p.Stop())

	st := p.Status()
	assert.Equal(t, mpd.StateStop, st.State)
	assert.Equal(t, 0, int(st.Elapsed))
}

func TestStopThenBarePlayRestartsAtZero(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	_, _ = p.Add("b.flac", nil)
	require.NoError(t, p.Play(intPtr(1)))
	require.NoError(t, p.Stop())
	require.NoError(t, p.Play(nil))

	assert.Equal(t, 0, p.Status().SongPos)
}

func TestNextAtEndOfQueueThenBarePlayRestartsAtZero(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	_, _ = p.Add("a.flac", nil)
	require.NoError(t, p.Play(nil))
	require.NoError(t, p.Next())
	assert.Equal(t, mpd.StateStop, p.Status().State)

	require.NoError(t, p.Play(nil))
	st := p.Status()
	assert.Equal(t, mpd.StatePlay, st.State)
	assert.Equal(t, 0, st.SongPos)
}

func TestNextWithEmptyQueueReturnsNoExist(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	assert.ErrorIs(t, p.Next(), mpd.ErrNoExist)
}

func TestSetVolumeValidatesRange(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	assert.ErrorIs(t, p.SetVolume(-1), mpd.ErrArg)
	assert.ErrorIs(t, p.SetVolume(101), mpd.ErrArg)
	require.NoError(t, p.SetVolume(50))
	assert.Equal(t, 50, p.Status().Volume)
}

func TestOutputEnableDisableToggle(t *testing.T) {
	p, _ := newTestPlayer()
	defer p.Close()

	require.NoError(t, p.DisableOutput(0))
	assert.False(t, p.Outputs()[0].Enabled)

	require.NoError(t, p.ToggleOutput(0))
	assert.True(t, p.Outputs()[0].Enabled)

	assert.ErrorIs(t, p.EnableOutput(99), mpd.ErrNoExist)
}

func intPtr(n int) *int { return &n }
