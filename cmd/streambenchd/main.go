package main

import (
	"flag"
	"log"

	"github.com/judwhite/go-svc"
)

var (
	cfgFile     string
	bindAddr    string
	port        uint
	bufferSize  int
	metricsAddr string
	pprofAddr   string
	debug       bool
)

func init() {
	flag.StringVar(&cfgFile, "C", "", "configuration file")
	flag.StringVar(&bindAddr, "addr", "", "local IPv4 address to bind (default wildcard)")
	flag.UintVar(&port, "port", 0, "listen port (default 12345)")
	flag.IntVar(&bufferSize, "buffer", 0, "transfer buffer size in bytes (default 2048)")
	flag.StringVar(&metricsAddr, "metrics", "", "metrics service address")
	flag.StringVar(&pprofAddr, "pprof", "", "profiling service address")
	flag.BoolVar(&debug, "D", false, "enable debug log level")

	flag.Parse()
}

func main() {
	p := &program{}
	if err := svc.Run(p); err != nil {
		log.Fatal(err)
	}
}
