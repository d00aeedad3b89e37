package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadFile(t *testing.T) {
	data := `
server:
  addr: 127.0.0.1
  port: 12345
  bufferSize: 4096
client:
  addr: 192.168.1.102
  port: 12344
  payloadSize: 2048
  reportInterval: 2s
log:
  level: debug
  format: json
metrics:
  addr: :9090
`
	file := filepath.Join(t.TempDir(), "streambench.yaml")
	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{}
	if err := cfg.ReadFile(file); err != nil {
		t.Fatal(err)
	}

	if cfg.Server == nil || cfg.Server.Port != 12345 || cfg.Server.BufferSize != 4096 {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.Client == nil || cfg.Client.Addr != "192.168.1.102" || cfg.Client.Port != 12344 {
		t.Errorf("client config = %+v", cfg.Client)
	}
	if cfg.Client.ReportInterval != 2*time.Second {
		t.Errorf("report interval = %v, want 2s", cfg.Client.ReportInterval)
	}
	if cfg.Log == nil || cfg.Log.Level != "debug" {
		t.Errorf("log config = %+v", cfg.Log)
	}
	if cfg.Metrics == nil || cfg.Metrics.Addr != ":9090" {
		t.Errorf("metrics config = %+v", cfg.Metrics)
	}
}

func TestWrite(t *testing.T) {
	cfg := &Config{
		Server: &ServerConfig{Port: 12345},
		Client: &ClientConfig{Addr: "10.0.0.1", PayloadSize: 2048},
	}

	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"port: 12345", "addr: 10.0.0.1", "payloadSize: 2048"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
