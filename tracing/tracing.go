package tracing

import (
	"context"
	"time"

	"github.com/canonical/go-wlscan/logging"
)

type contextKey string

const (
	traceContextKey contextKey = "trace"
)

// WithTracer returns a context with the tracer embedded in the context
// under the context key.
func WithTracer(ctx context.Context, tracer Tracer) context.Context {
	return context.WithValue(ctx, traceContextKey, tracer)
}

// Start returns a new context with the given trace.
// A valid span is always returned, even if the context does not contain a
// tracer. In that case, the span is a noop span.
func Start(ctx context.Context, name, detail string) (context.Context, Span) {
	value := ctx.Value(traceContextKey)
	if value == nil {
		return ctx, noopSpan{}
	}
	tracer, ok := value.(Tracer)
	if !ok {
		return ctx, noopSpan{}
	}
	return tracer.Start(ctx, name, detail)
}

// Tracer is the interface that all tracers must implement.
type Tracer interface {
	// Start creates a span and a context.Context containing the newly-created
	// span. The detail string names the object the span operates on, for
	// example the protocol or interface being generated.
	//
	// Any Span that is created MUST also be ended.
	Start(context.Context, string, string) (context.Context, Span)
}

// Span is the individual component of a trace. It represents a single named
// and timed generation stage.
type Span interface {
	// End completes the Span.
	End()
}

// noopSpan is a span that does nothing.
type noopSpan struct{}

func (noopSpan) End() {}

// Log returns a tracer that reports the duration of every span through the
// given logging function at debug level.
func Log(log logging.Func) Tracer {
	return logTracer{log: log}
}

type logTracer struct {
	log logging.Func
}

func (t logTracer) Start(ctx context.Context, name, detail string) (context.Context, Span) {
	return ctx, &logSpan{log: t.log, name: name, detail: detail, start: time.Now()}
}

type logSpan struct {
	log    logging.Func
	name   string
	detail string
	start  time.Time
}

func (s *logSpan) End() {
	s.log(logging.Debug, "%s %s: %s", s.name, s.detail, time.Since(s.start))
}
