// Package log wraps a process-wide zap logger.
//
// Call sites use leveled printers in event style:
//
//	log.Info.Printf("get_person ok id=%d", id)
//	log.Error.Printf("get_person repo_err id=%d err=%v", id, err)
//
// Structured fields are available through L().
package log

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Printer logs printf-style lines at a fixed level.
type Printer struct {
	level zapcore.Level
}

var (
	Debug = &Printer{level: zapcore.DebugLevel}
	Info  = &Printer{level: zapcore.InfoLevel}
	Warn  = &Printer{level: zapcore.WarnLevel}
	Error = &Printer{level: zapcore.ErrorLevel}
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
	sugar  = logger.Sugar()
)

func (p *Printer) Printf(format string, args ...any) {
	current().Logf(p.level, format, args...)
}

func (p *Printer) Println(args ...any) {
	current().Logln(p.level, args...)
}

// Fatalf logs at fatal level and exits, whatever the printer's level.
func (p *Printer) Fatalf(format string, args ...any) {
	current().Fatalf(format, args...)
}

// Init builds the global logger. env "production" selects the JSON production
// config; anything else gets the colored development console.
func Init(env, level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.DisableStacktrace = true
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	if format == "json" {
		cfg.Encoding = "json"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	} else {
		cfg.Encoding = "console"
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

// Set replaces the global logger. Tests use it with zaptest/observer.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	sugar = l.Sugar()
}

// L returns the global logger without the printer caller skip.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.WithOptions(zap.AddCallerSkip(-1))
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
