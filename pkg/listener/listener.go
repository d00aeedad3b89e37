// Package listener binds the server's local endpoint and bounds accepted
// sessions with a fixed-capacity slot queue.
package listener

import (
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// Endpoint identifies a bind target: an IPv4 address (empty for wildcard)
// and a 16-bit port. Immutable once configured for a run.
type Endpoint struct {
	Addr string
	Port uint16
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.Addr, strconv.Itoa(int(e.Port)))
}

// Listen binds a TCP listener to the endpoint. Failure here is a fatal
// startup condition for the serving role.
func Listen(ep Endpoint) (net.Listener, error) {
	if ep.Addr != "" {
		if ip := net.ParseIP(ep.Addr); ip == nil || ip.To4() == nil {
			return nil, errors.Errorf("listen: invalid IPv4 address %q", ep.Addr)
		}
	}

	ln, err := net.Listen("tcp4", ep.String())
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", ep)
	}
	return ln, nil
}
