// Package client implements the sending role: it connects to the server,
// sends a one-shot handshake, then floods the link with fixed-size payloads
// while reporting the achieved send rate every measurement window.
package client

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/streambench/streambench/pkg/config"
	"github.com/streambench/streambench/pkg/dialer"
	"github.com/streambench/streambench/pkg/logger"
	"github.com/streambench/streambench/pkg/meter"
	"github.com/streambench/streambench/pkg/metrics"
)

// handshakeMsg is written once right after connecting, to exercise the
// write path and give the peer an initial signal.
const handshakeMsg = "Hello!"

// payloadByte fills the transfer buffer. The payload carries no meaning;
// it is pure load generation.
const payloadByte = 'a'

type Options struct {
	Logger logger.Logger
	Output io.Writer
	Clock  meter.Clock
	Dialer *dialer.NetDialer
}

type Option func(opts *Options)

func LoggerOption(logger logger.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// OutputOption sets the writer the throughput reports are printed to.
func OutputOption(out io.Writer) Option {
	return func(opts *Options) {
		opts.Output = out
	}
}

func ClockOption(clock meter.Clock) Option {
	return func(opts *Options) {
		opts.Clock = clock
	}
}

func DialerOption(d *dialer.NetDialer) Option {
	return func(opts *Options) {
		opts.Dialer = d
	}
}

// Client saturates one outbound session. The transfer buffer is allocated
// once at construction and reused for every send.
type Client struct {
	remote string
	dialer *dialer.NetDialer
	buf    []byte
	window *meter.Window
	logger logger.Logger
	out    io.Writer
}

// New validates the remote IPv4 endpoint and prepares the payload buffer.
func New(cfg *config.ClientConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = &config.ClientConfig{}
	}

	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	log := options.Logger
	if log == nil {
		log = logger.Default()
	}
	out := options.Output
	if out == nil {
		out = os.Stdout
	}

	ip := net.ParseIP(cfg.Addr)
	if ip == nil || ip.To4() == nil {
		return nil, errors.Errorf("connect: invalid IPv4 address %q", cfg.Addr)
	}

	port := cfg.Port
	if port == 0 {
		port = config.DefaultPort
	}
	size := cfg.PayloadSize
	if size <= 0 {
		size = config.DefaultBufferSize
	}
	interval := cfg.ReportInterval
	if interval <= 0 {
		interval = config.DefaultReportInterval
	}

	d := options.Dialer
	if d == nil {
		d = &dialer.NetDialer{
			Timeout:   cfg.DialTimeout,
			Interface: cfg.Interface,
		}
	}

	buf := make([]byte, size)
	for i := range buf {
		buf[i] = payloadByte
	}

	return &Client{
		remote: net.JoinHostPort(ip.String(), strconv.Itoa(int(port))),
		dialer: d,
		buf:    buf,
		window: meter.NewWindow(options.Clock, interval),
		logger: log,
		out:    out,
	}, nil
}

// Run connects to the remote endpoint and floods it until the send fails
// or ctx is cancelled. A connect failure is fatal and not retried. The
// session is disconnected exactly once, on the way out.
func (c *Client) Run(ctx context.Context) error {
	conn, err := c.dialer.Dial(ctx, "tcp", c.remote)
	if err != nil {
		return errors.Wrapf(err, "connect to %s", c.remote)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	c.handshake(conn)
	c.saturate(ctx, conn)
	return nil
}

// handshake sends the fixed greeting. A failure here is advisory: it is
// logged and the saturation loop runs regardless.
func (c *Client) handshake(conn net.Conn) {
	c.logger.Infof("Sending %q", handshakeMsg)
	if _, err := conn.Write([]byte(handshakeMsg)); err != nil {
		c.logger.Warnf("handshake: %v", err)
	}
}

// saturate pushes the payload buffer as fast as the transport accepts it.
// Every full window it prints the rate and resets the window. The only
// exit paths are a send failure and ctx cancellation.
func (c *Client) saturate(ctx context.Context, conn net.Conn) {
	c.window.Reset(c.window.Now())

	for {
		if ctx.Err() != nil {
			return
		}

		now := c.window.Now()
		if c.window.Ready(now) {
			mbps := c.window.Rate(now)
			fmt.Fprintln(c.out, meter.FormatReport(mbps))
			metrics.SendRate().Set(mbps)
			c.window.Reset(now)
		}

		n, err := conn.Write(c.buf)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			metrics.SendErrors().Inc()
			c.logger.Errorf("send: %v", err)
			return
		}
		c.window.Add(len(c.buf))
		metrics.SentBytes().Add(float64(n))
	}
}
