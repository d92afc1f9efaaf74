package zap_logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	motmedelLog "github.com/Motmedel/cgi_go/pkg/log"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const Name = "cgi"

// ParseLevel maps a level name to a slog level. The empty string is info.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("slog level unmarshal text: %w", err)
	}
	return level, nil
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// New makes a logger that writes JSON records to writer through a zap core, with the error and
// context attribute extractors in front.
func New(writer io.Writer, level slog.Level) *slog.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stack_trace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(writer)),
		zapLevel(level),
	)

	return motmedelLog.New(
		zapslog.NewHandler(core, zapslog.WithName(Name)),
		&motmedelLog.ErrorContextExtractor{},
		&motmedelLog.AttrsContextExtractor{},
	)
}
