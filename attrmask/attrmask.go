// Package attrmask provides a slog.Handler middleware that redacts the
// values of sensitive keys from log records before they reach the wrapped
// handler. Group attributes are masked recursively, and payload values of
// type map[string]any or []any are masked structurally.
package attrmask

import (
	"context"
	"log/slog"

	"github.com/quinnturner/tslog/mask"
)

// Handler wraps any slog.Handler and masks matching attribute keys before
// passing the record on.
type Handler struct {
	next  slog.Handler
	rules mask.Rules
	attrs []slog.Attr
}

// Compile-time interface assertion
var _ slog.Handler = (*Handler)(nil)

// New creates a masking handler in front of next. Keys match
// case-insensitively at any group depth.
func New(next slog.Handler, keys []string, placeholder any) *Handler {
	return NewWithRules(next, mask.NewRules(keys, placeholder))
}

// NewWithRules creates a masking handler from prebuilt rules.
func NewWithRules(next slog.Handler, rules mask.Rules) *Handler {
	return &Handler{
		next:  next,
		rules: rules,
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if h.rules.Empty() && len(h.attrs) == 0 {
		return h.next.Handle(ctx, r)
	}

	masked := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	masked = append(masked, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		masked = append(masked, h.maskAttr(a))
		return true
	})

	newRecord := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	newRecord.AddAttrs(masked...)
	return h.next.Handle(ctx, newRecord)
}

// WithAttrs masks the given attributes immediately and returns a new
// Handler carrying them.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.maskAttr(a)
	}

	return &Handler{
		next:  h.next,
		rules: h.rules,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], masked...),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		next:  h.next.WithGroup(name),
		rules: h.rules,
		attrs: h.attrs,
	}
}

// maskAttr masks one attribute: a matching key's value becomes the
// placeholder, group members are masked recursively, and structured
// payload values are masked via the mask rules.
func (h *Handler) maskAttr(a slog.Attr) slog.Attr {
	if h.rules.Matches(a.Key) {
		return slog.Any(a.Key, h.rules.Placeholder())
	}

	a.Value = a.Value.Resolve()
	switch a.Value.Kind() {
	case slog.KindGroup:
		members := a.Value.Group()
		maskedMembers := make([]slog.Attr, len(members))
		for i, member := range members {
			maskedMembers[i] = h.maskAttr(member)
		}
		return slog.GroupAttrs(a.Key, maskedMembers...)
	case slog.KindAny:
		switch payload := a.Value.Any().(type) {
		case map[string]any, []any:
			return slog.Any(a.Key, h.rules.Mask(payload))
		}
	}
	return a
}
