package log

import (
	"fmt"
	"log/slog"

	slogcommon "github.com/samber/slog-common"

	"github.com/quinnturner/tslog/stacktrace"
	"github.com/quinnturner/tslog/xerrors"
)

// NewConverter builds a slog-to-zerolog attribute converter that renders
// error attributes with their recorded stack frames and, when an enricher
// is provided, a source code window for the innermost frame. The enricher
// may be nil.
func NewConverter(enricher *Enricher) func(addSource bool, replaceAttr func(groups []string, a slog.Attr) slog.Attr, loggerAttr []slog.Attr, groups []string, record *slog.Record) map[string]any {
	return func(addSource bool, replaceAttr func(groups []string, a slog.Attr) slog.Attr, loggerAttr []slog.Attr, groups []string, record *slog.Record) map[string]any {
		// aggregate all attributes
		attrs := slogcommon.AppendRecordAttrsToAttrs(loggerAttr, groups, record)

		attrs = replaceError(attrs, enricher)
		if addSource {
			attrs = append(attrs, slogcommon.Source(SourceKey, record))
		}
		attrs = slogcommon.ReplaceAttrs(replaceAttr, []string{}, attrs...)

		return slogcommon.AttrsToMap(attrs...)
	}
}

/*
replaceError looks for an "error" attribute and renders it as structured
data. A single error becomes:

	{
		"error": err.Error(),
		"stacktrace": <frame descriptors if the error carries a stack>,
		"codeframe": <source window if enrichment is enabled and succeeds>,
	}

A joined error keeps the flat "error" string and nests per-error detail:

	{
		"error": err.Error(),
		"error_context": {
			"error_0": { "error": ..., "stacktrace": ..., "codeframe": ... },
			"error_1": { ... },
		},
	}
*/
func replaceError(attrs []slog.Attr, enricher *Enricher) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if a.Key != ErrorKey {
			out = append(out, a)
			continue
		}

		err, ok := a.Value.Resolve().Any().(error)
		if !ok || err == nil {
			out = append(out, a)
			continue
		}

		out = append(out, slog.String(ErrorKey, err.Error()))

		joined := xerrors.Unjoin(err)
		if len(joined) == 1 {
			out = append(out, errorDetail(joined[0], enricher)...)
			continue
		}

		contexts := make([]slog.Attr, 0, len(joined))
		for i, child := range joined {
			detail := append(
				[]slog.Attr{slog.String(ErrorKey, child.Error())},
				errorDetail(child, enricher)...,
			)
			contexts = append(contexts, slog.GroupAttrs(fmt.Sprintf("error_%d", i), detail...))
		}
		out = append(out, slog.GroupAttrs("error_context", contexts...))
	}
	return out
}

// errorDetail renders the stack recorded on err, plus a code frame when
// enrichment is on. Errors without a stack produce nothing.
func errorDetail(err error, enricher *Enricher) []slog.Attr {
	trace := stacktrace.Extract(err)
	if trace == nil {
		return nil
	}

	attrs := []slog.Attr{slog.Any(StackTraceKey, stacktrace.StackMarshaler(trace))}
	if enricher != nil {
		if frame, ok := enricher.FrameFor(trace); ok {
			attrs = append(attrs, slog.Any(CodeFrameKey, frame))
		}
	}
	return attrs
}
