package error

import (
	"context"
	"log/slog"

	motmedelContext "github.com/Motmedel/cgi_go/pkg/context"
)

func LogError(ctx context.Context, message string, err error, logger *slog.Logger, args ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(motmedelContext.WithError(ctx, err), message, args...)
}

func LogWarning(ctx context.Context, message string, err error, logger *slog.Logger, args ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.WarnContext(motmedelContext.WithError(ctx, err), message, args...)
}
