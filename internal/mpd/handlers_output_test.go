package mpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdOutputsRendersEveryField(t *testing.T) {
	p := &fakePlayer{outputs: []Output{
		{ID: 0, Name: "speaker", Plugin: "alsa", Enabled: true, Volume: 80},
		{ID: 1, Name: "http", Plugin: "httpd", Enabled: false, Volume: -1},
	}}
	s := newHandlerTestServer(p, nil, nil, nil, Config{})

	resp, err := cmdOutputs(s, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, resp, "outputid: 0\n")
	assert.Contains(t, resp, "outputenabled: 1\n")
	assert.Contains(t, resp, "attribute: volume=80\n")
	assert.Contains(t, resp, "outputid: 1\n")
	assert.Contains(t, resp, "outputenabled: 0\n")
	assert.NotContains(t, resp, "volume=-1")
}

func TestCmdEnableOutputForwardsID(t *testing.T) {
	p := &fakePlayer{}
	s := newHandlerTestServer(p, nil, nil, nil, Config{})

	_, err := cmdEnableOutput(s, nil, []string{"2"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.enabledOutput)
}

func TestCmdOutputVolumeForwardsBothArgs(t *testing.T) {
	p := &fakePlayer{}
	s := newHandlerTestServer(p, nil, nil, nil, Config{})

	_, err := cmdOutputVolume(s, nil, []string{"1", "50"})
	require.NoError(t, err)
	assert.Equal(t, 1, p.outVolID)
	assert.Equal(t, 50, p.outVol)
}

func TestCmdToggleOutputRejectsNonInteger(t *testing.T) {
	p := &fakePlayer{}
	s := newHandlerTestServer(p, nil, nil, nil, Config{})

	_, err := cmdToggleOutput(s, nil, []string{"x"})
	ae, ok := err.(*ackError)
	require.True(t, ok)
	assert.Equal(t, AckArg, ae.Code)
}
