package slquickemu

import (
	"fmt"
	"net"
	"strconv"
)

// SpiceBasePort is the well-known SPICE port. Probing starts just above it.
const SpiceBasePort = 5900

// spiceProbeCount is the number of ports tried above the base.
const spiceProbeCount = 5

// PortProber finds a local TCP port for the remote display.
type PortProber interface {
	// FreePort returns the first port in base+1..base+5 that does not
	// accept connections, or ErrNoOpenPorts.
	FreePort(base int) (int, error)
}

// TCPProber probes 127.0.0.1 with plain TCP connects. A refused connect
// means free. The port can still be taken between the probe and the
// emulator binding it.
type TCPProber struct {
	// Dial opens a connection. Defaults to net.Dial.
	Dial func(network, address string) (net.Conn, error)
}

// FreePort implements PortProber.
func (p TCPProber) FreePort(base int) (int, error) {
	dial := p.Dial
	if dial == nil {
		dial = net.Dial
	}

	for i := 1; i <= spiceProbeCount; i++ {
		port := base + i
		conn, err := dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err != nil {
			return port, nil
		}
		conn.Close()
	}

	return 0, fmt.Errorf("%w: %d-%d", ErrNoOpenPorts, base+1, base+spiceProbeCount)
}
