package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor pulls an attribute for a record from its context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type scopeKey struct{}

// WithScope returns a copy of ctx whose log records carry attrs.
// Scopes nest: an attr whose key the parent scope already set replaces it.
// Empty attrs are skipped.
//
//	ctx = logger.WithScope(ctx, logger.Command("check"))
//	ctx = logger.WithScope(ctx, logger.Check("iban"))
//	log.DebugContext(ctx, "check finished") // command=check check=iban
func WithScope(ctx context.Context, attrs ...slog.Attr) context.Context {
	parent := ScopeAttrs(ctx)
	merged := slices.Clone(parent)
	for _, a := range attrs {
		if a.Equal(slog.Attr{}) {
			continue
		}
		i := slices.IndexFunc(merged, func(m slog.Attr) bool { return m.Key == a.Key })
		if i >= 0 {
			merged[i] = a
			continue
		}
		merged = append(merged, a)
	}
	return context.WithValue(ctx, scopeKey{}, merged)
}

// ScopeAttrs returns the attrs attached to ctx by WithScope, outermost first.
func ScopeAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(scopeKey{}).([]slog.Attr)
	return attrs
}

// scopeHandler adds scope attrs and extractor attrs to every handled record.
// A key the record already carries is not repeated, and scope attrs win over
// extractors for the same key.
type scopeHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func newScopeHandler(next slog.Handler, extractors []ContextExtractor) slog.Handler {
	return &scopeHandler{next: next, extractors: extractors}
}

func (h *scopeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *scopeHandler) Handle(ctx context.Context, rec slog.Record) error {
	scope := ScopeAttrs(ctx)
	if len(scope) == 0 && len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}

	seen := make(map[string]struct{}, rec.NumAttrs()+len(scope))
	rec.Attrs(func(a slog.Attr) bool {
		seen[a.Key] = struct{}{}
		return true
	})
	add := func(a slog.Attr) {
		if _, dup := seen[a.Key]; dup {
			return
		}
		seen[a.Key] = struct{}{}
		rec.AddAttrs(a)
	}

	for _, a := range scope {
		add(a)
	}
	for _, ex := range h.extractors {
		if a, ok := ex(ctx); ok {
			add(a)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *scopeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &scopeHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *scopeHandler) WithGroup(name string) slog.Handler {
	return &scopeHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
