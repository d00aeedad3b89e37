package metrics

import (
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultPath = "/metrics"

// Service exposes the registered collectors over HTTP.
type Service interface {
	Serve() error
	Addr() net.Addr
	Close() error
}

type service struct {
	server *http.Server
	ln     net.Listener
}

func NewService(addr, path string) (Service, error) {
	if path == "" {
		path = DefaultPath
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.Handler())

	return &service{
		server: &http.Server{Handler: mux},
		ln:     ln,
	}, nil
}

func (s *service) Serve() error {
	return s.server.Serve(s.ln)
}

func (s *service) Addr() net.Addr {
	return s.ln.Addr()
}

func (s *service) Close() error {
	return s.server.Close()
}
