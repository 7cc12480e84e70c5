package lens

import (
	"context"
	"log/slog"

	lenserrors "github.com/authcorp/lens/errors"
)

// TraceOption configures Traced.
type TraceOption func(*tracer)

// WithLogger sets the logger. Defaults to slog.Default(); nil is ignored.
func WithLogger(logger *slog.Logger) TraceOption {
	return func(t *tracer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithLevel sets the level of success records. Defaults to slog.LevelDebug.
func WithLevel(level slog.Level) TraceOption {
	return func(t *tracer) {
		t.level = level
	}
}

type tracer struct {
	name   string
	logger *slog.Logger
	level  slog.Level
}

func (t *tracer) record(op string, err error) {
	if err == nil {
		t.logger.LogAttrs(context.Background(), t.level, "lens "+op,
			slog.String("lens", t.name))
		return
	}
	attrs := []slog.Attr{
		slog.String("lens", t.name),
		slog.String("error", err.Error()),
	}
	if cause, ok := lenserrors.CauseOf(err); ok {
		attrs = append(attrs, slog.String("cause", string(cause)))
	}
	t.logger.LogAttrs(context.Background(), slog.LevelWarn, "lens "+op+" failed", attrs...)
}

// Traced wraps l so that every operation emits one structured log record.
// Results are exactly those of l.
func Traced[S, A any](name string, l Lens[S, A], opts ...TraceOption) Lens[S, A] {
	t := &tracer{name: name, logger: slog.Default(), level: slog.LevelDebug}
	for _, opt := range opts {
		opt(t)
	}
	return Lens[S, A]{
		get: func(s S) (A, error) {
			a, err := l.get(s)
			t.record("get", err)
			return a, err
		},
		put: func(s S, a A) (S, error) {
			r, err := l.put(s, a)
			t.record("put", err)
			return r, err
		},
		update: func(s S, fn func(A) (A, error)) (S, error) {
			r, err := l.update(s, fn)
			t.record("update", err)
			return r, err
		},
	}
}
