package context

import (
	"context"
	"fmt"

	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
)

type errorContextType struct{}

var ErrorContextKey errorContextType

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, ErrorContextKey, err)
}

func GetContextValue[T any](ctx context.Context, key any) (T, error) {
	extractedValue := ctx.Value(key)
	value, ok := extractedValue.(T)
	if !ok {
		return value, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %T", motmedelErrors.ErrConversionNotOk, extractedValue),
			extractedValue,
		)
	}

	return value, nil
}
