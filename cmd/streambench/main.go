package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/streambench/streambench/pkg/client"
	"github.com/streambench/streambench/pkg/config"
	"github.com/streambench/streambench/pkg/config/parsing"
	"github.com/streambench/streambench/pkg/logger"
	"github.com/streambench/streambench/pkg/metrics"
)

var (
	cfgFile        string
	remoteAddr     string
	port           uint
	payloadSize    int
	reportInterval time.Duration
	dialTimeout    time.Duration
	ifceName       string
	metricsAddr    string
	pprofAddr      string
	debug          bool
)

func init() {
	flag.StringVar(&cfgFile, "C", "", "configuration file")
	flag.StringVar(&remoteAddr, "addr", "", "remote IPv4 address")
	flag.UintVar(&port, "port", 0, "remote port (default 12345)")
	flag.IntVar(&payloadSize, "payload", 0, "payload size in bytes (default 2048)")
	flag.DurationVar(&reportInterval, "interval", 0, "throughput report interval (default 2s)")
	flag.DurationVar(&dialTimeout, "timeout", 0, "connect timeout (default none)")
	flag.StringVar(&ifceName, "interface", "", "interface or local IP to dial from")
	flag.StringVar(&metricsAddr, "metrics", "", "metrics service address")
	flag.StringVar(&pprofAddr, "pprof", "", "profiling service address")
	flag.BoolVar(&debug, "D", false, "enable debug log level")

	flag.Parse()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logger.Default().Fatal(err)
	}

	logger.SetDefault(parsing.ParseLogger(cfg.Log))
	log := logger.Default()

	if cfg.Profiling != nil && cfg.Profiling.Enabled {
		go func() {
			addr := cfg.Profiling.Addr
			if addr == "" {
				addr = ":6060"
			}
			log.Info("profiling server on ", addr)
			log.Fatal(http.ListenAndServe(addr, nil))
		}()
	}

	if cfg.Metrics != nil && cfg.Metrics.Addr != "" {
		metrics.SetGlobal(metrics.NewMetrics())
		s, err := metrics.NewService(cfg.Metrics.Addr, cfg.Metrics.Path)
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			defer s.Close()
			log.Info("metrics service on ", s.Addr())
			log.Fatal(s.Serve())
		}()
	}

	c, err := client.New(cfg.Client)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.Run(ctx); err != nil {
		log.Fatal(err)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if cfgFile != "" {
		if err := cfg.ReadFile(cfgFile); err != nil {
			return nil, err
		}
	} else {
		if err := cfg.Load(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	if cfg.Client == nil {
		cfg.Client = &config.ClientConfig{}
	}
	if remoteAddr != "" {
		cfg.Client.Addr = remoteAddr
	}
	if port != 0 {
		cfg.Client.Port = uint16(port)
	}
	if payloadSize != 0 {
		cfg.Client.PayloadSize = payloadSize
	}
	if reportInterval != 0 {
		cfg.Client.ReportInterval = reportInterval
	}
	if dialTimeout != 0 {
		cfg.Client.DialTimeout = dialTimeout
	}
	if ifceName != "" {
		cfg.Client.Interface = ifceName
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

	return cfg, nil
}
