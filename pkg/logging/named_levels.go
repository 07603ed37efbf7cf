package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// NamedLevels is a zapcore.Core that filters entries by the dotted name of the logger that wrote them.
// The most specific configured prefix wins: with levels {"cr": warn, "cr.reconcile": debug}, a logger named
// "cr.reconcile.create" logs at debug and one named "cr.handler" at warn. The empty name sets the level for
// every logger that has no more specific entry.
type NamedLevels struct {
	zapcore.Core

	levels map[string]zapcore.Level
}

func NewNamedLevels(core zapcore.Core, levels map[string]zapcore.Level) *NamedLevels {
	copied := make(map[string]zapcore.Level, len(levels))
	for k, v := range levels {
		copied[k] = v
	}
	return &NamedLevels{Core: core, levels: copied}
}

func (nl *NamedLevels) With(fields []zapcore.Field) zapcore.Core {
	return &NamedLevels{Core: nl.Core.With(fields), levels: nl.levels}
}

// Enabled reports true for any level that the wrapped core or a named level would log.
func (nl *NamedLevels) Enabled(lvl zapcore.Level) bool {
	if nl.Core.Enabled(lvl) {
		return true
	}
	for _, level := range nl.levels {
		if lvl >= level {
			return true
		}
	}
	return false
}

func (nl *NamedLevels) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	level, ok := nl.levelFor(e.LoggerName)
	if !ok {
		return nl.Core.Check(e, ce)
	}
	if e.Level < level {
		return ce
	}
	return ce.AddCore(e, nl)
}

func (nl *NamedLevels) levelFor(name string) (zapcore.Level, bool) {
	for name != "" {
		if level, ok := nl.levels[name]; ok {
			return level, true
		}
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	level, ok := nl.levels[""]
	return level, ok
}

// ParseLevels parses a LOG_LEVEL style value ("name=level,other.name=level"). Malformed pairs are skipped.
func ParseLevels(value string) map[string]zapcore.Level {
	levels := make(map[string]zapcore.Level)
	for _, pair := range strings.Split(value, ",") {
		name, lvl, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		level, err := zapcore.ParseLevel(lvl)
		if err != nil {
			continue
		}
		levels[name] = level
	}
	return levels
}
