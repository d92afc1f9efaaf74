package chunked

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	motmedelEnv "github.com/Motmedel/cgi_go/pkg/env"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/chunked/chunked_config"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
	motmedelLogError "github.com/Motmedel/cgi_go/pkg/log/error"
)

// Handler streams its configured chunks with a delay between them, simulating a slow producer.
type Handler struct {
	config *chunked_config.Config
}

func (handler *Handler) getConfig() *chunked_config.Config {
	if handler.config == nil {
		return chunked_config.New()
	}
	return handler.config
}

func resolveDelay(ctx context.Context, config *chunked_config.Config, request *request.Request) time.Duration {
	if request == nil || config.DelayEnvName == "" {
		return config.Delay
	}

	delay, err := motmedelEnv.GetDurationWithDefault(request.Environment.Lookup, config.DelayEnvName, config.Delay)
	if err != nil {
		motmedelLogError.LogWarning(ctx, "The chunk delay could not be parsed. Using the default.", err, nil)
	}

	return delay
}

func producer(ctx context.Context, config *chunked_config.Config, delay time.Duration) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for i, chunk := range config.Chunks {
			if i > 0 {
				if err := config.DelayFunc(ctx, delay); err != nil {
					yield(nil, fmt.Errorf("delay func: %w", err))
					return
				}
			}

			slog.DebugContext(ctx, "Producing a chunk.", slog.Int("index", i), slog.Int("size", len(chunk)))

			if !yield([]byte(chunk), nil) {
				return
			}
		}
	}
}

func (handler *Handler) Handle(ctx context.Context, request *request.Request, emitter *emitter.Emitter) error {
	config := handler.getConfig()

	headers := header_set.New(
		header_set.Entry{Name: "Transfer-Encoding", Value: "chunked"},
		header_set.Entry{Name: "Content-Type", Value: "text/plain"},
	)

	if err := emitter.EmitChunked(headers, producer(ctx, config, resolveDelay(ctx, config, request))); err != nil {
		return fmt.Errorf("emitter emit chunked: %w", err)
	}

	return nil
}

func New(options ...chunked_config.Option) *Handler {
	return &Handler{config: chunked_config.New(options...)}
}
