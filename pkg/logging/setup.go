package logging

import (
	"fmt"
	"os"
	"time"

	prettyconsole "github.com/thessem/zap-prettyconsole"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

type LogOpts struct {
	Verbose bool
	// Color is one of auto, always/on or never/off. Only used by the console encodings.
	Color string
	// Encoding is json, console or pretty_console. Defaults to console.
	Encoding string
	// DefaultLevels are the per-logger levels used when LOG_LEVEL is not set.
	DefaultLevels map[string]zapcore.Level
}

func (opts LogOpts) Encoder() zapcore.Encoder {
	switch opts.Encoding {
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		if opts.Verbose {
			cfg = zap.NewDevelopmentEncoderConfig()
		}
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)

	case "console", "pretty_console", "":
		useColor := true
		switch opts.Color {
		case "auto", "":
			useColor = term.IsTerminal(int(os.Stderr.Fd()))
		case "always", "on":
			useColor = true
		case "never", "off":
			useColor = false
		}

		if useColor {
			cfg := prettyconsole.NewEncoderConfig()
			cfg.EncodeTime = TimeOffsetFormatter(time.Now(), useColor)
			return prettyconsole.NewEncoder(cfg)
		}
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = TimeOffsetFormatter(time.Now(), useColor)
		return zapcore.NewConsoleEncoder(cfg)

	default:
		panic(fmt.Errorf("unknown encoding %q", opts.Encoding))
	}
}

func (opts LogOpts) NewCore(w zapcore.WriteSyncer) zapcore.Core {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if opts.Verbose {
		level.SetLevel(zap.DebugLevel)
	}

	core := zapcore.NewCore(opts.Encoder(), w, level)

	levels := opts.DefaultLevels
	if env, ok := os.LookupEnv("LOG_LEVEL"); ok {
		levels = ParseLevels(env)
	}
	if len(levels) > 0 {
		core = NewNamedLevels(core, levels)
	}
	return core
}

func (opts LogOpts) NewLogger() *zap.Logger {
	return zap.New(opts.NewCore(zapcore.Lock(os.Stderr)))
}

// NewLambdaLogger returns a JSON logger suited to CloudWatch. LOG_VERBOSE=true enables debug output.
func NewLambdaLogger() *zap.Logger {
	opts := LogOpts{Encoding: "json"}
	if v, ok := os.LookupEnv("LOG_VERBOSE"); ok && (v == "true" || v == "1") {
		opts.Verbose = true
	}
	return zap.New(opts.NewCore(zapcore.Lock(os.Stdout)))
}

// TimeOffsetFormatter returns a time encoder that formats the time as an offset from the start time.
// Intended for CLI runs, where the absolute time is less useful than how long the run has taken.
func TimeOffsetFormatter(start time.Time, color bool) zapcore.TimeEncoder {
	var colStart = "\x1b[90m"
	var colEnd = "\x1b[0m"
	if !color {
		colStart = ""
		colEnd = ""
	}
	return func(t time.Time, e zapcore.PrimitiveArrayEncoder) {
		diff := t.Sub(start)
		switch {
		case diff < time.Second:
			e.AppendString(fmt.Sprintf(" %s%3dms%s", colStart, diff.Milliseconds(), colEnd))
		case diff < 5*time.Minute:
			e.AppendString(fmt.Sprintf("%s%5.1fs%s", colStart, diff.Seconds(), colEnd))
		default:
			e.AppendString(fmt.Sprintf("%s%5.1fm%s", colStart, diff.Minutes(), colEnd))
		}
	}
}
