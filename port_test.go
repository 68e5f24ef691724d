package slquickemu

import (
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialer accepts connections on the listed ports and refuses all others.
func dialer(listening map[int]bool, dialed *[]string) func(string, string) (net.Conn, error) {
	return func(network, address string) (net.Conn, error) {
		*dialed = append(*dialed, address)
		_, p, err := net.SplitHostPort(address)
		if err != nil {
			return nil, err
		}
		port, _ := strconv.Atoi(p)
		if listening[port] {
			client, server := net.Pipe()
			server.Close()
			return client, nil
		}
		return nil, errors.New("connection refused")
	}
}

func TestTCPProberFirstFree(t *testing.T) {
	var dialed []string
	prober := TCPProber{Dial: dialer(map[int]bool{5901: true, 5902: true}, &dialed)}

	port, err := prober.FreePort(SpiceBasePort)
	require.NoError(t, err)
	assert.Equal(t, 5903, port)
	assert.Equal(t, []string{"127.0.0.1:5901", "127.0.0.1:5902", "127.0.0.1:5903"}, dialed)
}

func TestTCPProberAllTaken(t *testing.T) {
	var dialed []string
	all := map[int]bool{5901: true, 5902: true, 5903: true, 5904: true, 5905: true}
	prober := TCPProber{Dial: dialer(all, &dialed)}

	_, err := prober.FreePort(SpiceBasePort)
	require.ErrorIs(t, err, ErrNoOpenPorts)
	assert.Len(t, dialed, 5)
}

// Any listener counts as taken, even one unrelated to SPICE, and a port
// reported free can still be bound by someone else before the emulator
// starts.
func TestTCPProberRealListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	busy := ln.Addr().(*net.TCPAddr).Port
	base := busy - 1

	port, err := TCPProber{}.FreePort(base)
	if errors.Is(err, ErrNoOpenPorts) {
		t.Skip("every port above the listener is in use")
	}
	require.NoError(t, err)
	assert.NotEqual(t, busy, port)
	assert.Greater(t, port, busy)
}
