package mpd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToAckMapsSentinelErrors(t *testing.T) {
	cases := []struct {
		err  error
		code AckCode
	}{
		{ErrNoExist, AckNoExist},
		{ErrArg, AckArg},
		{ErrExist, AckExist},
		{ErrPermission, AckPermission},
		{ErrPlaylistMax, AckPlaylistMax},
		{ErrPlaylistLoad, AckPlaylistLoad},
		{ErrUpdateAlready, AckUpdateAlready},
		{ErrSystem, AckSystem},
	}
	for _, c := range cases {
		ae := toAck(c.err)
		assert.Equalf(t, c.code, ae.Code, "error %v", c.err)
	}
}

func TestToAckWrapsSentinelErrors(t *testing.T) {
	wrapped := fmt.Errorf("library: lookup: %w", ErrNoExist)
	ae := toAck(wrapped)
	assert.Equal(t, AckNoExist, ae.Code)
}

func TestToAckPassesThroughExistingAckError(t *testing.T) {
	orig := &ackError{Code: AckPermission, Msg: "nope"}
	ae := toAck(orig)
	assert.Same(t, orig, ae)
}

func TestToAckDefaultsToUnknown(t *testing.T) {
	ae := toAck(errors.New("something else"))
	assert.Equal(t, AckUnknown, ae.Code)
}

func TestFormatAckGrammar(t *testing.T) {
	out := formatAck(AckArg, 3, "play", "bad argument")
	assert.Equal(t, "ACK [2@3] {play} bad argument\n", out)
}

func TestAckErrorfFormatsMessage(t *testing.T) {
	err := ackErrorf(AckArg, "no such tag %q", "Bogus")
	ae, ok := err.(*ackError)
	require := assert.New(t)
	require.True(ok)
	require.Equal(AckArg, ae.Code)
	require.Equal(`no such tag "Bogus"`, ae.Msg)
}
