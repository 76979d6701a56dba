package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ConsoleHandler is an slog.Handler that writes compact human-readable
// lines: `level: message key=value ...`. It is the diagnostics side
// channel of the CLI, kept separate from the primary map-file output.
type ConsoleHandler struct {
	// mu guards output; slog may call Handle from multiple goroutines.
	mu sync.Mutex

	// output is the destination stream, normally os.Stderr.
	output io.Writer

	// level is the minimum level that is emitted.
	level slog.Level

	// attrs holds attributes accumulated via WithAttrs.
	attrs []slog.Attr

	// groups holds open group names; attribute keys are prefixed with them.
	groups []string
}

// NewConsoleHandler creates a ConsoleHandler writing to output at the
// given minimum level.
func NewConsoleHandler(output io.Writer, level slog.Level) *ConsoleHandler {
	return &ConsoleHandler{
		output: output,
		level:  level,
	}
}

// Enabled reports whether records at the given level are emitted.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle renders the record as a single line.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(levelLabel(r.Level))
	sb.WriteString(": ")
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, sb.String())
	return err
}

// WithAttrs returns a handler that includes attrs in every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	clone.attrs = append(clone.attrs, attrs...)
	return clone
}

// WithGroup returns a handler that prefixes subsequent attribute keys
// with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

// clone copies the handler's configuration, sharing the output stream.
func (h *ConsoleHandler) clone() *ConsoleHandler {
	return &ConsoleHandler{
		output: h.output,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

// appendAttr renders one attribute as ` key=value`, flattening groups.
func (h *ConsoleHandler) appendAttr(sb *strings.Builder, a slog.Attr) {
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.appendAttr(sb, slog.Attr{Key: a.Key + "." + ga.Key, Value: ga.Value})
		}
		return
	}

	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}

	value := a.Value.String()
	if strings.ContainsAny(value, " \t") {
		value = fmt.Sprintf("%q", value)
	}
	fmt.Fprintf(sb, " %s=%s", key, value)
}

// levelLabel maps slog levels to the lowercase labels used on the
// diagnostics channel.
func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	case level >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
