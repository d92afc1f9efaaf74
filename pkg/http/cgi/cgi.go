package cgi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	motmedelEnv "github.com/Motmedel/cgi_go/pkg/env"
	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/handler"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/serve_config"
	motmedelLog "github.com/Motmedel/cgi_go/pkg/log"
	motmedelLogError "github.com/Motmedel/cgi_go/pkg/log/error"
	"github.com/Motmedel/cgi_go/pkg/log/zap_logger"
)

const (
	LogLevelEnvName  = "CGI_LOG_LEVEL"
	StatusHeaderName = "Status"
)

// StatusValue formats the value of a CGI Status header field: "400 Bad Request".
func StatusValue(statusCode int) string {
	return strconv.Itoa(statusCode) + " " + http.StatusText(statusCode)
}

func emitStatus(responseEmitter *emitter.Emitter, statusCode int) error {
	headers := header_set.New(
		header_set.Entry{Name: StatusHeaderName, Value: StatusValue(statusCode)},
		header_set.Entry{Name: "Content-Type", Value: "text/plain"},
	)
	return responseEmitter.EmitFixed(headers, []byte(http.StatusText(statusCode)+"\n"))
}

// Serve handles one invocation: it builds the request from the configured environment and input,
// runs handler with an emitter over the configured output, and logs any failure.
func Serve(ctx context.Context, requestHandler handler.Handler, options ...serve_config.Option) error {
	if requestHandler == nil {
		return motmedelErrors.NewWithTrace(cgiErrors.ErrNilHandler)
	}

	config := serve_config.New(options...)
	logger := config.Logger

	ctx = motmedelLog.WithAttrs(ctx, slog.String("invocation_id", config.InvocationIdFunc()))

	responseEmitter, err := emitter.New(config.Output, config.EmitterOptions...)
	if err != nil {
		return fmt.Errorf("emitter new: %w", err)
	}

	cgiRequest, err := request.New(config.Environment, config.Input)
	if err != nil {
		err = fmt.Errorf("request new: %w", err)
		motmedelLogError.LogError(ctx, "The request could not be built.", err, logger)

		if emitErr := emitStatus(responseEmitter, http.StatusBadRequest); emitErr != nil {
			motmedelLogError.LogError(ctx, "A bad request response could not be emitted.", emitErr, logger)
		}

		return err
	}

	ctx = motmedelLog.WithAttrs(
		ctx,
		slog.Group(
			"request",
			slog.String("method", cgiRequest.Method),
			slog.String("script_name", cgiRequest.ScriptName),
			slog.Int64("content_length", cgiRequest.ContentLength),
		),
	)

	logger.DebugContext(ctx, "Handling a request.")

	if err := requestHandler.Handle(ctx, cgiRequest, responseEmitter); err != nil {
		err = fmt.Errorf("handler handle: %w", err)
		motmedelLogError.LogError(ctx, "An error occurred when handling a request.", err, logger)

		if responseEmitter.State() == emitter.StateHeadersPending {
			if emitErr := emitStatus(responseEmitter, http.StatusInternalServerError); emitErr != nil {
				motmedelLogError.LogError(ctx, "An internal server error response could not be emitted.", emitErr, logger)
			}
		}

		return err
	}

	if responseEmitter.State() == emitter.StateHeadersPending {
		err := motmedelErrors.NewWithTrace(cgiErrors.ErrNoResponseWritten)
		motmedelLogError.LogError(ctx, "The handler did not write a response.", err, logger)

		if emitErr := emitStatus(responseEmitter, http.StatusInternalServerError); emitErr != nil {
			motmedelLogError.LogError(ctx, "An internal server error response could not be emitted.", emitErr, logger)
		}

		return err
	}

	logger.DebugContext(ctx, "The request was handled.", slog.String("emitter_state", responseEmitter.State().String()))

	return nil
}

// Run is the process entry point of a CGI program. It logs to standard error and exits with status
// 1 when serving fails.
func Run(requestHandler handler.Handler, options ...serve_config.Option) {
	level, levelErr := zap_logger.ParseLevel(motmedelEnv.GetEnvWithDefault(LogLevelEnvName, ""))

	logger := zap_logger.New(os.Stderr, level)
	slog.SetDefault(logger)

	if levelErr != nil {
		motmedelLogError.LogWarning(
			context.Background(),
			"The log level could not be parsed. Using the default.",
			motmedelErrors.New(levelErr, os.Getenv(LogLevelEnvName)),
			logger,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := Serve(ctx, requestHandler, append([]serve_config.Option{serve_config.WithLogger(logger)}, options...)...)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
