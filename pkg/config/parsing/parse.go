package parsing

import (
	"os"

	"github.com/streambench/streambench/pkg/config"
	"github.com/streambench/streambench/pkg/logger"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLogger builds a logger from the log section of the configuration.
// An empty or "stderr" output logs to the console; any other value is
// treated as a file path with size-based rotation.
func ParseLogger(cfg *config.LogConfig) logger.Logger {
	if cfg == nil {
		cfg = &config.LogConfig{}
	}

	opts := []logger.LoggerOption{
		logger.FormatLoggerOption(logger.LogFormat(cfg.Format)),
		logger.LevelLoggerOption(logger.LogLevel(cfg.Level)),
	}

	switch cfg.Output {
	case "", "stderr":
		opts = append(opts, logger.OutputLoggerOption(os.Stderr))
	case "stdout":
		opts = append(opts, logger.OutputLoggerOption(os.Stdout))
	default:
		opts = append(opts, logger.OutputLoggerOption(&lumberjack.Logger{
			Filename:   cfg.Output,
			MaxSize:    100,
			MaxBackups: 3,
			Compress:   true,
		}))
	}

	return logger.NewLogger(opts...)
}
