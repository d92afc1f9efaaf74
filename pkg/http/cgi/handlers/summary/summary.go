package summary

import (
	"bytes"
	"context"
	"fmt"

	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
)

// Handler answers with a plain-text summary of the method, path, query and body.
type Handler struct{}

func (handler *Handler) Handle(ctx context.Context, request *request.Request, emitter *emitter.Emitter) error {
	if request == nil {
		return motmedelErrors.NewWithTrace(cgiErrors.ErrNilRequest)
	}

	var buffer bytes.Buffer
	buffer.WriteString("=== CGI Summary ===\n")
	fmt.Fprintf(&buffer, "Method : %s\n", request.Method)
	fmt.Fprintf(&buffer, "Path   : %s\n", request.PathInfo)
	fmt.Fprintf(&buffer, "Query  : %s\n", request.QueryString)
	fmt.Fprintf(&buffer, "Body   : %s\n", request.Body)

	headers := header_set.New(header_set.Entry{Name: "Content-Type", Value: "text/plain"})
	if err := emitter.EmitFixed(headers, buffer.Bytes()); err != nil {
		return fmt.Errorf("emitter emit fixed: %w", err)
	}

	return nil
}
