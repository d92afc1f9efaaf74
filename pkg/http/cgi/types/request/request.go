package request

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	motmedelEnv "github.com/Motmedel/cgi_go/pkg/env"
	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	"github.com/Motmedel/cgi_go/pkg/errors/types/nil_error"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request/request_errors"
	"go.uber.org/multierr"
)

// Request is one CGI invocation: its meta-variables and the body read from the input stream.
type Request struct {
	Method        string
	ContentLength int64
	QueryString   string
	ScriptName    string
	PathInfo      string
	Environment   Environment
	Body          []byte
}

func parseContentLength(environment Environment) (int64, error) {
	value := strings.TrimSpace(environment.Get(ContentLength))
	if value == "" {
		return 0, nil
	}

	contentLength, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, motmedelErrors.New(
			fmt.Errorf("%w: strconv parse int: %w", request_errors.ErrBadContentLength, err),
			value,
		)
	}
	if contentLength < 0 {
		return 0, motmedelErrors.New(fmt.Errorf("%w: negative", request_errors.ErrBadContentLength), value)
	}

	return contentLength, nil
}

// New builds the request from environment and reads exactly CONTENT_LENGTH bytes from input. All
// problems with the meta-variables are reported together.
func New(environment Environment, input io.Reader) (*Request, error) {
	if environment == nil {
		environment = Environment{}
	}

	var err error

	method, methodErr := motmedelEnv.Read(environment.Lookup, RequestMethod)
	if methodErr != nil {
		err = multierr.Append(err, fmt.Errorf("read request method: %w", methodErr))
	}

	contentLength, contentLengthErr := parseContentLength(environment)
	if contentLengthErr != nil {
		err = multierr.Append(err, fmt.Errorf("parse content length: %w", contentLengthErr))
	}

	if err != nil {
		return nil, err
	}

	request := &Request{
		Method:        method,
		ContentLength: contentLength,
		QueryString:   environment.Get(QueryString),
		ScriptName:    environment.Get(ScriptName),
		PathInfo:      environment.Get(PathInfo),
		Environment:   environment,
	}

	if contentLength == 0 {
		return request, nil
	}

	if input == nil {
		return nil, motmedelErrors.NewWithTrace(nil_error.New("input reader"))
	}

	body, readErr := io.ReadAll(io.LimitReader(input, contentLength))
	if readErr != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("io read all (body): %w", readErr))
	}
	if int64(len(body)) < contentLength {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: got %d of %d bytes", request_errors.ErrShortBody, len(body), contentLength),
		)
	}
	request.Body = body

	return request, nil
}

// Header returns the value of the HTTP_* meta-variable of a header field.
func (request *Request) Header(name string) string {
	return request.Environment.Get(HeaderVariableName(name))
}

func (request *Request) Query() (url.Values, error) {
	values, err := url.ParseQuery(request.QueryString)
	if err != nil {
		return values, motmedelErrors.New(fmt.Errorf("url parse query: %w", err), request.QueryString)
	}
	return values, nil
}
