// Package server implements the receiving role: it accepts one stream
// session at a time and drains every byte the peer sends.
package server

import (
	"context"
	"net"
	"sync/atomic"

	"github.com/streambench/streambench/pkg/config"
	"github.com/streambench/streambench/pkg/listener"
	"github.com/streambench/streambench/pkg/logger"
	"github.com/streambench/streambench/pkg/metrics"
)

type Options struct {
	Logger logger.Logger
}

type Option func(opts *Options)

func LoggerOption(logger logger.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// Server accepts sequential sessions and sinks their bytes. At most one
// session is active at a time; the transfer buffer is owned by the server
// and reused across every read.
type Server struct {
	ln       net.Listener
	queue    *listener.Queue
	buf      []byte
	logger   logger.Logger
	received atomic.Uint64
}

// New binds the local endpoint and creates the session queue. A bind
// failure is fatal: the caller logs the error and terminates.
func New(cfg *config.ServerConfig, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = &config.ServerConfig{}
	}

	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	log := options.Logger
	if log == nil {
		log = logger.Default()
	}

	port := cfg.Port
	if port == 0 {
		port = config.DefaultPort
	}
	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = config.DefaultBufferSize
	}

	ln, err := listener.Listen(listener.Endpoint{Addr: cfg.Addr, Port: port})
	if err != nil {
		return nil, err
	}

	log.Infof("Listening on port %d", port)

	return &Server{
		ln:     ln,
		queue:  listener.NewQueue(listener.DefaultQueueLen),
		buf:    make([]byte, bufSize),
		logger: log,
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Received returns the cumulative byte count drained across all sessions.
func (s *Server) Received() uint64 {
	return s.received.Load()
}

// Serve accepts sessions until ctx is cancelled. An accept failure is
// logged and the accept is retried immediately; it never terminates the
// loop. Each accepted session is drained to completion before the next
// accept.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		s.ln.Close()
	})
	defer stop()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			metrics.AcceptErrors().Inc()
			s.logger.Warnf("accept: %v", err)
			continue
		}

		id, err := s.queue.Acquire(conn)
		if err != nil {
			conn.Close()
			s.logger.Warnf("accept: %v", err)
			continue
		}
		metrics.Sessions().Inc()

		s.logger.Info("Reading data")
		stopConn := context.AfterFunc(ctx, func() {
			conn.Close()
		})
		s.drain(ctx, conn)
		stopConn()
		s.queue.Release(id)
		s.logger.Info("Disconnected")

		if ctx.Err() != nil {
			return nil
		}
	}
}

// drain reads into the transfer buffer until the peer disconnects or the
// transport fails. The data is discarded; only the count is kept. A
// graceful close and an I/O fault end the session the same way.
func (s *Server) drain(ctx context.Context, conn net.Conn) {
	for {
		n, err := conn.Read(s.buf)
		if n > 0 {
			s.received.Add(uint64(n))
			metrics.ReceivedBytes().Add(float64(n))
		}
		if err != nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (s *Server) Close() error {
	return s.ln.Close()
}
