package log

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/quinnturner/tslog/codeframe"
	"github.com/quinnturner/tslog/stacktrace"
)

// enrichCacheSize bounds the per-enricher cache of extracted code frames.
// Errors from hot paths tend to repeat the same few locations.
const enrichCacheSize = 128

// Enricher resolves a stack to the source code window of its innermost
// usable frame. Results, including failed extractions, are cached per
// file:line so repeated errors do not re-read files. The core extractor
// itself stays cache-free; caching is a pipeline concern.
type Enricher struct {
	cache        *lru.Cache[string, frameResult]
	contextLines int
}

type frameResult struct {
	frame codeframe.Frame
	ok    bool
}

// NewEnricher creates an Enricher with the given context window size.
func NewEnricher(contextLines int) *Enricher {
	if contextLines < 0 {
		contextLines = codeframe.DefaultContextLines
	}
	// lru.New only fails on a non-positive size
	cache, _ := lru.New[string, frameResult](enrichCacheSize)
	return &Enricher{
		cache:        cache,
		contextLines: contextLines,
	}
}

// FrameFor extracts the code frame for the innermost frame of trace that
// has file and line information. Extraction failures report ok=false.
func (e *Enricher) FrameFor(trace stacktrace.Stack) (codeframe.Frame, bool) {
	for _, f := range trace {
		if f.FullFilePath == "" || f.Line < 1 {
			continue
		}

		key := f.FullFilePath + ":" + strconv.Itoa(f.Line)
		if cached, ok := e.cache.Get(key); ok {
			return cached.frame, cached.ok
		}

		frame, ok := codeframe.Extract(f.FullFilePath, f.Line, f.Column, e.contextLines)
		e.cache.Add(key, frameResult{frame: frame, ok: ok})
		return frame, ok
	}
	return codeframe.Frame{}, false
}
