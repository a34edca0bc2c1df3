package comm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// commHandler routes slog records through comm, so structured logs end
// up as JSON lines in --json mode and as plain log lines otherwise.
type commHandler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*commHandler)(nil)

// NewSlogHandler returns a slog.Handler that emits logs through comm.
func NewSlogHandler(level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}

	return &commHandler{
		level: level,
	}
}

func (h *commHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return level >= slog.LevelInfo
	}
	return level >= h.level.Level()
}

func (h *commHandler) Handle(_ context.Context, r slog.Record) error {
	obj := JsonMessage{
		"type":    "log",
		"time":    time.Now().UTC().Unix(),
		"level":   commLevel(r.Level),
		"message": r.Message,
	}

	for _, attr := range h.attrs {
		flatten(obj, h.groups, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		flatten(obj, h.groups, attr)
		return true
	})

	if JsonEnabled() {
		// Records from a logger that's enabled at debug level skip
		// comm's own debug filtering on purpose.
		sendJSON(obj)
		return nil
	}

	level, _ := obj["level"].(string)
	if level == "" {
		level = "info"
	}
	Logl(level, fmt.Sprintf("%v", obj["message"]))
	return nil
}

func (h *commHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	nh.attrs = append(nh.attrs, attrs...)
	return nh
}

func (h *commHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func (h *commHandler) clone() *commHandler {
	return &commHandler{
		level:  h.level,
		groups: append([]string{}, h.groups...),
		attrs:  append([]slog.Attr{}, h.attrs...),
	}
}

// flatten stores attr into obj under a dotted group-qualified key,
// recursing into group attrs.
func flatten(obj JsonMessage, groups []string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		nextGroups := append([]string{}, groups...)
		if attr.Key != "" {
			nextGroups = append(nextGroups, attr.Key)
		}
		for _, groupAttr := range attr.Value.Group() {
			flatten(obj, nextGroups, groupAttr)
		}
		return
	}

	if attr.Key == "" {
		return
	}

	key := strings.Join(append(append([]string{}, groups...), attr.Key), ".")

	switch attr.Value.Kind() {
	case slog.KindString:
		obj[key] = attr.Value.String()
	case slog.KindBool:
		obj[key] = attr.Value.Bool()
	case slog.KindInt64:
		obj[key] = attr.Value.Int64()
	case slog.KindUint64:
		obj[key] = attr.Value.Uint64()
	case slog.KindFloat64:
		obj[key] = attr.Value.Float64()
	case slog.KindDuration:
		obj[key] = attr.Value.Duration()
	case slog.KindTime:
		obj[key] = attr.Value.Time()
	default:
		obj[key] = attr.Value.Any()
	}
}

func commLevel(level slog.Level) string {
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
