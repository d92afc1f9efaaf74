package cgi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	motmedelEnvErrors "github.com/Motmedel/cgi_go/pkg/env/errors"
	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/echo"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/handler"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/serve_config"
	"github.com/Motmedel/cgi_go/pkg/log/zap_logger"
	motmedelTestingCmp "github.com/Motmedel/cgi_go/pkg/testing/cmp"
)

const testInvocationId = "00000000-0000-4000-8000-000000000000"

type testInvocation struct {
	output bytes.Buffer
	logs   bytes.Buffer
}

func (invocation *testInvocation) serve(
	t *testing.T,
	requestHandler handler.Handler,
	environment request.Environment,
	input string,
) error {
	t.Helper()

	return Serve(
		context.Background(),
		requestHandler,
		serve_config.WithEnvironment(environment),
		serve_config.WithInput(strings.NewReader(input)),
		serve_config.WithOutput(&invocation.output),
		serve_config.WithLogger(zap_logger.New(&invocation.logs, slog.LevelDebug)),
		serve_config.WithInvocationIdFunc(func() string { return testInvocationId }),
	)
}

func (invocation *testInvocation) records(t *testing.T) []map[string]any {
	t.Helper()

	var records []map[string]any
	scanner := bufio.NewScanner(&invocation.logs)
	for scanner.Scan() {
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("unexpected error decoding log line %q: %v", scanner.Text(), err)
		}
		records = append(records, record)
	}

	return records
}

func findRecord(t *testing.T, records []map[string]any, message string) map[string]any {
	t.Helper()

	for _, record := range records {
		if record["message"] == message {
			return record
		}
	}

	t.Fatalf("no log record with message %q in %v", message, records)
	return nil
}

func TestStatusValue(t *testing.T) {
	if got := StatusValue(400); got != "400 Bad Request" {
		t.Errorf("got %q, expected %q", got, "400 Bad Request")
	}
}

func TestServe(t *testing.T) {
	t.Run("echo", func(t *testing.T) {
		invocation := &testInvocation{}
		environment := request.Environment{
			request.RequestMethod: "POST",
			request.ContentLength: "5",
			request.ScriptName:    "/cgi-bin/echo",
		}

		if err := invocation.serve(t, &echo.Handler{}, environment, "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		motmedelTestingCmp.CompareOutput(
			t,
			invocation.output.Bytes(),
			[]byte(
				"Content-Type: text/plain\r\nX-Received-Bytes: 5\r\n\r\n"+
					"Received 5 bytes\nFirst 100 bytes: hello\nLast  100 bytes: hello\n",
			),
		)

		record := findRecord(t, invocation.records(t), "Handling a request.")
		if record["invocation_id"] != testInvocationId {
			t.Errorf("got invocation id %v, expected %q", record["invocation_id"], testInvocationId)
		}

		requestGroup, ok := record["request"].(map[string]any)
		if !ok {
			t.Fatalf("got request group %v, expected an object", record["request"])
		}
		if requestGroup["method"] != "POST" || requestGroup["script_name"] != "/cgi-bin/echo" {
			t.Errorf("got request group %v", requestGroup)
		}
	})

	t.Run("bad request", func(t *testing.T) {
		invocation := &testInvocation{}

		err := invocation.serve(t, &echo.Handler{}, request.Environment{request.ContentLength: "x"}, "")
		if !errors.Is(err, motmedelEnvErrors.ErrNotPresent) {
			t.Errorf("got error %v, expected %v", err, motmedelEnvErrors.ErrNotPresent)
		}

		motmedelTestingCmp.CompareOutput(
			t,
			invocation.output.Bytes(),
			[]byte("Status: 400 Bad Request\r\nContent-Type: text/plain\r\n\r\nBad Request\n"),
		)

		record := findRecord(t, invocation.records(t), "The request could not be built.")
		if record["level"] != "error" {
			t.Errorf("got level %v, expected %q", record["level"], "error")
		}
		if _, ok := record["error"].(map[string]any); !ok {
			t.Errorf("got error group %v, expected an object", record["error"])
		}
		if record["invocation_id"] != testInvocationId {
			t.Errorf("got invocation id %v, expected %q", record["invocation_id"], testInvocationId)
		}
	})

	t.Run("handler error", func(t *testing.T) {
		invocation := &testInvocation{}
		handlerErr := errors.New("handler failed")

		failing := handler.HandlerFunc(func(context.Context, *request.Request, *emitter.Emitter) error {
			return handlerErr
		})

		err := invocation.serve(t, failing, request.Environment{request.RequestMethod: "GET"}, "")
		if !errors.Is(err, handlerErr) {
			t.Errorf("got error %v, expected %v", err, handlerErr)
		}

		record := findRecord(t, invocation.records(t), "An error occurred when handling a request.")
		errorGroup, ok := record["error"].(map[string]any)
		if !ok {
			t.Fatalf("got error group %v, expected an object", record["error"])
		}
		if errorGroup["message"] != "handler handle: handler failed" {
			t.Errorf("got error message %v", errorGroup["message"])
		}
	})

	t.Run("handler error before writing", func(t *testing.T) {
		invocation := &testInvocation{}

		invalidHeader := handler.HandlerFunc(
			func(_ context.Context, _ *request.Request, responseEmitter *emitter.Emitter) error {
				headers := header_set.New(header_set.Entry{Name: "X", Value: "a\nb"})
				return responseEmitter.EmitFixed(headers, []byte("body"))
			},
		)

		err := invocation.serve(t, invalidHeader, request.Environment{request.RequestMethod: "GET"}, "")
		if !errors.Is(err, cgiErrors.ErrInvalidHeader) {
			t.Errorf("got error %v, expected %v", err, cgiErrors.ErrInvalidHeader)
		}

		motmedelTestingCmp.CompareOutput(
			t,
			invocation.output.Bytes(),
			[]byte("Status: 500 Internal Server Error\r\nContent-Type: text/plain\r\n\r\nInternal Server Error\n"),
		)
	})

	t.Run("handler error after writing", func(t *testing.T) {
		invocation := &testInvocation{}
		handlerErr := errors.New("late failure")

		late := handler.HandlerFunc(
			func(_ context.Context, _ *request.Request, responseEmitter *emitter.Emitter) error {
				headers := header_set.New(header_set.Entry{Name: "Content-Type", Value: "text/plain"})
				if err := responseEmitter.EmitFixed(headers, []byte("ok")); err != nil {
					return err
				}
				return handlerErr
			},
		)

		err := invocation.serve(t, late, request.Environment{request.RequestMethod: "GET"}, "")
		if !errors.Is(err, handlerErr) {
			t.Errorf("got error %v, expected %v", err, handlerErr)
		}

		motmedelTestingCmp.CompareOutput(t, invocation.output.Bytes(), []byte("Content-Type: text/plain\r\n\r\nok"))
	})

	t.Run("handler writes nothing", func(t *testing.T) {
		invocation := &testInvocation{}

		silent := handler.HandlerFunc(func(context.Context, *request.Request, *emitter.Emitter) error {
			return nil
		})

		err := invocation.serve(t, silent, request.Environment{request.RequestMethod: "GET"}, "")
		if !errors.Is(err, cgiErrors.ErrNoResponseWritten) {
			t.Errorf("got error %v, expected %v", err, cgiErrors.ErrNoResponseWritten)
		}

		motmedelTestingCmp.CompareOutput(
			t,
			invocation.output.Bytes(),
			[]byte("Status: 500 Internal Server Error\r\nContent-Type: text/plain\r\n\r\nInternal Server Error\n"),
		)
	})

	t.Run("nil handler", func(t *testing.T) {
		err := Serve(context.Background(), nil)
		if !errors.Is(err, cgiErrors.ErrNilHandler) {
			t.Errorf("got error %v, expected %v", err, cgiErrors.ErrNilHandler)
		}
	})
}
