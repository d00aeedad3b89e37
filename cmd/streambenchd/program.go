package main

import (
	"context"
	"net/http"
	_ "net/http/pprof"

	"github.com/judwhite/go-svc"
	"github.com/spf13/viper"
	"github.com/streambench/streambench/pkg/config"
	"github.com/streambench/streambench/pkg/config/parsing"
	"github.com/streambench/streambench/pkg/logger"
	"github.com/streambench/streambench/pkg/metrics"
	"github.com/streambench/streambench/pkg/server"
)

type program struct {
	cfg    *config.Config
	server *server.Server
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *program) Init(env svc.Environment) error {
	cfg := &config.Config{}
	if cfgFile != "" {
		if err := cfg.ReadFile(cfgFile); err != nil {
			return err
		}
	} else {
		if err := cfg.Load(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
	}

	if cfg.Server == nil {
		cfg.Server = &config.ServerConfig{}
	}
	if bindAddr != "" {
		cfg.Server.Addr = bindAddr
	}
	if port != 0 {
		cfg.Server.Port = uint16(port)
	}
	if bufferSize != 0 {
		cfg.Server.BufferSize = bufferSize
	}
	if metricsAddr != "" {
		cfg.Metrics = &config.MetricsConfig{
			Addr: metricsAddr,
		}
	}
	if pprofAddr != "" {
		cfg.Profiling = &config.ProfilingConfig{
			Addr:    pprofAddr,
			Enabled: true,
		}
	}
	if debug {
		if cfg.Log == nil {
			cfg.Log = &config.LogConfig{}
		}
		cfg.Log.Level = string(logger.DebugLevel)
	}

	logger.SetDefault(parsing.ParseLogger(cfg.Log))

	p.cfg = cfg
	p.done = make(chan struct{})

	srv, err := server.New(cfg.Server)
	if err != nil {
		logger.Default().Error(err)
		return err
	}
	p.server = srv

	return nil
}

func (p *program) Start() error {
	log := logger.Default()

	if p.cfg.Profiling != nil && p.cfg.Profiling.Enabled {
		go func() {
			addr := p.cfg.Profiling.Addr
			if addr == "" {
				addr = ":6060"
			}
			log.Info("profiling server on ", addr)
			log.Fatal(http.ListenAndServe(addr, nil))
		}()
	}

	if p.cfg.Metrics != nil && p.cfg.Metrics.Addr != "" {
		metrics.SetGlobal(metrics.NewMetrics())
		s, err := metrics.NewService(p.cfg.Metrics.Addr, p.cfg.Metrics.Path)
		if err != nil {
			return err
		}
		go func() {
			defer s.Close()
			log.Info("metrics service on ", s.Addr())
			log.Fatal(s.Serve())
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	go func() {
		defer close(p.done)
		p.server.Serve(ctx)
	}()

	return nil
}

func (p *program) Stop() error {
	if p.cancel != nil {
		p.cancel()
		p.server.Close()
		<-p.done
	}
	logger.Default().Debug("server shutdown")
	return nil
}
