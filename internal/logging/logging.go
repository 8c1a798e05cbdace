// Package logging configures the process-wide logger. The overlay renders to
// the terminal, so logs go to a rotated file under the config directory
// instead of stdout.
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls log output location and verbosity.
type Options struct {
	Dir   string // Directory for overlay.log
	Debug bool   // Enables debug-level logging (stale-result drops etc.)
}

// New builds a file-backed zap logger. It never fails: if the directory is
// not writable lumberjack surfaces the error on first write and zap keeps
// running, which is acceptable for a desktop tool.
func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, "overlay.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(writer),
		level,
	)

	return zap.New(core)
}

// NewNop returns a logger that discards everything, for tests.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
