package log

import (
	"context"
	"encoding"
	"fmt"
	"log/slog"
	"reflect"

	motmedelContext "github.com/Motmedel/cgi_go/pkg/context"
	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
)

type ContextExtractor interface {
	Handle(context.Context, *slog.Record) error
}

type ContextExtractorFunction func(context.Context, *slog.Record) error

func (cef ContextExtractorFunction) Handle(ctx context.Context, record *slog.Record) error {
	return cef(ctx, record)
}

// ContextHandler runs its extractors on every record before passing it to Next.
type ContextHandler struct {
	Next       slog.Handler
	Extractors []ContextExtractor
}

func (contextHandler *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return contextHandler.Next.Enabled(ctx, level)
}

func (contextHandler *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, extractor := range contextHandler.Extractors {
		if extractor != nil {
			if err := extractor.Handle(ctx, &record); err != nil {
				return fmt.Errorf("extractor handle: %w", err)
			}
		}
	}
	return contextHandler.Next.Handle(ctx, record)
}

func (contextHandler *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Next: contextHandler.Next.WithAttrs(attrs), Extractors: contextHandler.Extractors}
}

func (contextHandler *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Next: contextHandler.Next.WithGroup(name), Extractors: contextHandler.Extractors}
}

func New(handler slog.Handler, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(&ContextHandler{Next: handler, Extractors: extractors})
}

func makeTextualRepresentation(value any) string {
	switch typedValue := value.(type) {
	case string:
		return typedValue
	case []byte:
		return fmt.Sprintf("%q", typedValue)
	case encoding.TextMarshaler:
		if data, err := typedValue.MarshalText(); err == nil {
			return string(data)
		}
	}

	return fmt.Sprintf("%#v", value)
}

type ErrorContextExtractor struct {
	SkipCause      bool
	SkipInput      bool
	SkipStackTrace bool
}

func (extractor *ErrorContextExtractor) MakeErrorAttrs(err error) []any {
	if err == nil {
		return nil
	}

	errType := reflect.TypeOf(err).String()

	var attrs []any

	switch err.(type) {
	case *motmedelErrors.ExtendedError:
	default:
		switch errType {
		case "*errors.errorString", "*fmt.wrapError":
		default:
			attrs = append(attrs, slog.String("type", errType))
		}
	}

	if inputError, ok := err.(motmedelErrors.InputErrorI); ok && !extractor.SkipInput {
		if input := inputError.GetInput(); input != nil {
			attrs = append(
				attrs,
				slog.Group(
					"input",
					slog.String("value", makeTextualRepresentation(input)),
					slog.String("type", reflect.TypeOf(input).String()),
				),
			)
		}
	}

	if !extractor.SkipCause {
		wrappedErrors := motmedelErrors.CollectWrappedErrors(err)
		var lastWrappedErrorAttrs []any

		for i := len(wrappedErrors) - 1; i >= 0; i-- {
			wrappedError := wrappedErrors[i]

			switch reflect.TypeOf(wrappedError).String() {
			case "*errors.joinError", "*fmt.wrapError", "*multierr.multiError":
				continue
			}

			wrappedErrorAttrs := extractor.MakeErrorAttrs(wrappedError)
			if lastWrappedErrorAttrs != nil {
				wrappedErrorAttrs = append(wrappedErrorAttrs, slog.Group("cause", lastWrappedErrorAttrs...))
			}

			lastWrappedErrorAttrs = wrappedErrorAttrs
		}

		if lastWrappedErrorAttrs != nil {
			attrs = append(attrs, slog.Group("cause", lastWrappedErrorAttrs...))
		}
	}

	if stackTraceError, ok := err.(motmedelErrors.StackTraceErrorI); ok && !extractor.SkipStackTrace {
		if stackTrace := stackTraceError.GetStackTrace(); stackTrace != "" {
			attrs = append(attrs, slog.String("stack_trace", stackTrace))
		}
	}

	if errorMessage := err.Error(); errorMessage != "" {
		attrs = append(attrs, slog.String("message", errorMessage))
	}

	return attrs
}

func (extractor *ErrorContextExtractor) Handle(ctx context.Context, record *slog.Record) error {
	if record == nil {
		return nil
	}

	if logErr, ok := ctx.Value(motmedelContext.ErrorContextKey).(error); ok {
		record.Add(slog.Group("error", extractor.MakeErrorAttrs(logErr)...))
	}

	return nil
}

type attrsContextType struct{}

var AttrsContextKey attrsContextType

// WithAttrs returns a context whose attributes are added to every record logged with it.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := motmedelContext.GetContextValue[[]slog.Attr](ctx, AttrsContextKey)
	return context.WithValue(ctx, AttrsContextKey, append(append([]slog.Attr(nil), existing...), attrs...))
}

type AttrsContextExtractor struct{}

func (extractor *AttrsContextExtractor) Handle(ctx context.Context, record *slog.Record) error {
	if record == nil {
		return nil
	}

	if attrs, ok := ctx.Value(AttrsContextKey).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}

	return nil
}
