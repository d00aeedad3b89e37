package dialer

import (
	"context"
	"fmt"
	"net"
	"time"
)

var (
	DefaultNetDialer = &NetDialer{
		Timeout: 30 * time.Second,
	}
)

// NetDialer dials the benchmark peer. Interface optionally pins the local
// address to a named interface or IP.
type NetDialer struct {
	Interface string
	Timeout   time.Duration
	DialFunc  func(ctx context.Context, network, addr string) (net.Conn, error)
}

func (d *NetDialer) Dial(ctx context.Context, network, addr string) (net.Conn, error) {
	switch network {
	case "tcp", "tcp4", "tcp6":
	default:
		return nil, fmt.Errorf("dial: unsupported network %s", network)
	}

	if d.DialFunc != nil {
		return d.DialFunc(ctx, network, addr)
	}

	laddr, err := parseInterfaceAddr(d.Interface)
	if err != nil {
		return nil, err
	}

	netd := net.Dialer{
		Timeout:   d.Timeout,
		LocalAddr: laddr,
	}
	return netd.DialContext(ctx, network, addr)
}

func parseInterfaceAddr(ifceName string) (net.Addr, error) {
	if ifceName == "" {
		return nil, nil
	}

	ip := net.ParseIP(ifceName)
	if ip == nil {
		ifce, err := net.InterfaceByName(ifceName)
		if err != nil {
			return nil, err
		}
		addrs, err := ifce.Addrs()
		if err != nil {
			return nil, err
		}
		if len(addrs) == 0 {
			return nil, fmt.Errorf("addr not found for interface %s", ifceName)
		}
		ip = addrs[0].(*net.IPNet).IP
	}

	return &net.TCPAddr{IP: ip}, nil
}
