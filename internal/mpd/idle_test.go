package mpd

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func readAll(t *testing.T, conn net.Conn) string {
	t.Helper()
	buf := make([]byte, 4096)
	n, _ := conn.Read(buf)
	return string(buf[:n])
}

func TestHandleIdleDrainsAlreadyPendingEvents(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newClientContext(1, server, true)
	c.pending = EventPlayer | EventQueue

	out := make(chan string, 1)
	go func() { out <- readAll(t, client) }()

	s := &Server{}
	s.handleIdle(c, nil)
	c.flush()

	got := <-out
	assert.Contains(t, got, "changed: playlist\n")
	assert.Contains(t, got, "changed: player\n")
	assert.Contains(t, got, "OK\n")
	assert.False(t, c.idleActive)
}

func TestHandleIdleParksWithNoPendingEvents(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newClientContext(1, server, true)

	s := &Server{}
	s.handleIdle(c, []string{"player"})

	assert.True(t, c.idleActive)
	assert.Equal(t, EventPlayer, c.idleMask)
}

func TestHandleIdleWithNoArgsArmsEverySubsystem(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newClientContext(1, server, true)
	s := &Server{}
	s.handleIdle(c, nil)

	assert.Equal(t, EventAll, c.idleMask)
}

func TestOnBusEventWakesParkedIdleClient(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newClientContext(1, server, true)
	s := &Server{}
	s.handleIdle(c, []string{"mixer"})

	out := make(chan string, 1)
	go func() { out <- readAll(t, client) }()

	s.onBusEvent(c, EventVolume)

	got := <-out
	assert.Contains(t, got, "changed: mixer\n")
	assert.Contains(t, got, "OK\n")
}

func TestOnBusEventQueuesWhenSubsystemNotArmed(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newClientContext(1, server, true)
	s := &Server{}
	s.handleIdle(c, []string{"mixer"})

	s.onBusEvent(c, EventPlayer)

	assert.True(t, c.idleActive)
	assert.Equal(t, EventPlayer, c.pending)
}

func TestHandleNoIdleEmitsBareOKWhenNothingPending(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	c := newClientContext(1, server, true)
	c.idleActive = true
	c.idleMask = EventAll

	out := make(chan string, 1)
	go func() { out <- readAll(t, client) }()

	s := &Server{}
	s.handleNoIdle(c)
	c.flush()

	assert.Equal(t, "OK\n", <-out)
	assert.False(t, c.idleActive)
}
