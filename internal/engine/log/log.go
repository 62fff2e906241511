// Package log wraps logrus with the level/format/output configuration
// the engine's World and Scene report schedule and scene-sync activity
// through. Grounded on r3e-network-service_layer/pkg/logger.
package log

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps *logrus.Logger. Its Debugf/Errorf methods (inherited
// from the embedded logrus.Logger) satisfy both ecs.Logger and
// render.Logger without either package importing logrus.
type Logger struct {
	*logrus.Logger
}

// Config controls level, format, and output destination.
type Config struct {
	Level      string `yaml:"level" env:"ENGINE_LOG_LEVEL"`
	Format     string `yaml:"format" env:"ENGINE_LOG_FORMAT"`
	Output     string `yaml:"output" env:"ENGINE_LOG_OUTPUT"`
	FilePrefix string `yaml:"file_prefix" env:"ENGINE_LOG_FILE_PREFIX"`
}

// New builds a Logger from cfg. An unparseable Level falls back to
// Info; an unrecognized Format falls back to plain text.
func New(cfg Config) *Logger {
	base := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch strings.ToLower(cfg.Output) {
	case "file":
		prefix := cfg.FilePrefix
		if prefix == "" {
			prefix = "bizarre-engine"
		}
		if err := os.MkdirAll("logs", 0o755); err != nil {
			base.Errorf("log: failed to create logs directory: %v", err)
			break
		}
		path := filepath.Join("logs", prefix+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			base.Errorf("log: failed to open log file: %v", err)
			break
		}
		base.SetOutput(io.MultiWriter(os.Stdout, file))
	default:
		base.SetOutput(os.Stdout)
	}

	return &Logger{Logger: base}
}

// NewDefault returns an Info-level, text-formatted, stdout Logger.
func NewDefault() *Logger {
	return New(Config{Level: "info", Format: "text", Output: "stdout"})
}
