// Package log builds the standard slog logger: zerolog output, masked
// sensitive keys, and errors enriched with stack frames and source code
// windows.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/quinnturner/tslog/attrmask"
	"github.com/quinnturner/tslog/codeframe"
	"github.com/quinnturner/tslog/config"
	"github.com/quinnturner/tslog/mask"
)

const (
	ErrorKey      = "error"
	SourceKey     = "source"
	StackTraceKey = "stacktrace"
	CodeFrameKey  = "codeframe"
)

type Identity struct {
	ServiceName string
	InstanceID  string
}

func (i Identity) String() string {
	return fmt.Sprintf("%s-%s", i.ServiceName, i.InstanceID)
}

var (
	logLevel = &slog.LevelVar{}
	identity = Identity{
		ServiceName: "unknown",
		InstanceID:  xid.New().String(),
	}
)

func WhoAmI() Identity {
	return identity
}

func SetLogLevel(level string) error {
	if level != "" {
		return logLevel.UnmarshalText([]byte(level))
	}
	return nil
}

// ErrAttr is a helper for logging error values.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrorKey, err)
}

type options struct {
	writer       io.Writer
	clock        clockwork.Clock
	maskRules    mask.Rules
	masking      bool
	codeFrames   bool
	contextLines int
}

// Option is an option func for NewLogger.
type Option func(o *options)

// WithWriter directs log output to w instead of stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithClock sets the clock used for log timestamps. Note that zerolog's
// timestamp function is process-wide, so the clock applies to every
// zerolog-backed logger in the process.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithMasking replaces the values of the given case-insensitive keys with
// placeholder in every log record, at any nesting depth.
func WithMasking(keys []string, placeholder any) Option {
	return func(o *options) {
		o.maskRules = mask.NewRules(keys, placeholder)
		o.masking = true
	}
}

// WithCodeFrames enriches logged errors that carry a stack with a window
// of contextLines source lines around the innermost application frame.
func WithCodeFrames(contextLines int) Option {
	return func(o *options) {
		o.codeFrames = true
		o.contextLines = contextLines
	}
}

// NewLogger creates a new slog logger backed by zerolog with some standard
// defaults.
func NewLogger(serviceName string, opts ...Option) *slog.Logger {
	o := options{
		writer:       os.Stdout,
		contextLines: codeframe.DefaultContextLines,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// ms granularity should be sufficient
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if o.clock != nil {
		zerolog.TimestampFunc = o.clock.Now
	}
	identity.ServiceName = serviceName

	zlogger := zerolog.
		New(o.writer).With().                 // log to stdout unless redirected
		Timestamp().                          // include timestamp
		Str("service", identity.ServiceName). // include the service name
		Str("instance", identity.InstanceID). // include unique id for instance
		Logger()

	var enricher *Enricher
	if o.codeFrames {
		enricher = NewEnricher(o.contextLines)
	}

	var handler slog.Handler = slogzerolog.Option{
		Converter: NewConverter(enricher),
		Level:     logLevel,
		Logger:    &zlogger,
	}.NewZerologHandler()

	if o.masking {
		handler = attrmask.NewWithRules(handler, o.maskRules)
	}

	return slog.New(handler)
}

// NewLoggerFromSettings creates a logger configured by loaded settings.
func NewLoggerFromSettings(settings config.Settings, opts ...Option) (*slog.Logger, error) {
	if err := SetLogLevel(settings.Level); err != nil {
		return nil, err
	}

	base := make([]Option, 0, len(opts)+2)
	if len(settings.MaskKeys) > 0 {
		base = append(base, WithMasking(settings.MaskKeys, settings.MaskPlaceholder))
	}
	if settings.CodeFrames.Enabled {
		base = append(base, WithCodeFrames(settings.CodeFrames.ContextLines))
	}
	base = append(base, opts...)

	return NewLogger(settings.ServiceName, base...), nil
}
