package config

import (
	"io"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var (
	v = viper.GetViper()
)

func init() {
	v.SetConfigName("streambench")
	v.AddConfigPath("/etc/streambench/")
	v.AddConfigPath("$HOME/.streambench/")
	v.AddConfigPath(".")
	v.SetEnvPrefix("streambench")
	v.AutomaticEnv()
}

const (
	// DefaultPort is the well-known port both roles use unless configured otherwise.
	DefaultPort uint16 = 12345
	// DefaultBufferSize is the size of the transfer buffer shared by every
	// read or write call. A throughput tuning knob, not a protocol constant.
	DefaultBufferSize = 2 * 1024
	// DefaultReportInterval is how often the client recomputes and prints
	// the achieved send rate.
	DefaultReportInterval = 2 * time.Second
)

type LogConfig struct {
	Output string `yaml:",omitempty"`
	Level  string `yaml:",omitempty"`
	Format string `yaml:",omitempty"`
}

type ProfilingConfig struct {
	Addr    string
	Enabled bool
}

type MetricsConfig struct {
	Addr string
	Path string `yaml:",omitempty"`
}

type ServerConfig struct {
	Addr       string `yaml:",omitempty"`
	Port       uint16 `yaml:",omitempty"`
	BufferSize int    `yaml:"bufferSize,omitempty"`
}

type ClientConfig struct {
	Addr           string        `yaml:",omitempty"`
	Port           uint16        `yaml:",omitempty"`
	PayloadSize    int           `yaml:"payloadSize,omitempty"`
	ReportInterval time.Duration `yaml:"reportInterval,omitempty"`
	DialTimeout    time.Duration `yaml:"dialTimeout,omitempty"`
	Interface      string        `yaml:",omitempty"`
}

type Config struct {
	Server    *ServerConfig    `yaml:",omitempty"`
	Client    *ClientConfig    `yaml:",omitempty"`
	Log       *LogConfig       `yaml:",omitempty"`
	Profiling *ProfilingConfig `yaml:",omitempty"`
	Metrics   *MetricsConfig   `yaml:",omitempty"`
}

func (c *Config) Load() error {
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(c)
}

func (c *Config) Read(r io.Reader) error {
	if err := v.ReadConfig(r); err != nil {
		return err
	}

	return v.Unmarshal(c)
}

func (c *Config) ReadFile(file string) error {
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(c)
}

func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(c)
}
