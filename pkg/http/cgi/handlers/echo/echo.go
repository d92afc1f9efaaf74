package echo

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
)

const (
	ReceivedBytesHeaderName = "X-Received-Bytes"
	excerptLength           = 100
)

// Handler reports how many body bytes it received, with the first and last of them.
type Handler struct{}

func (handler *Handler) Handle(ctx context.Context, request *request.Request, emitter *emitter.Emitter) error {
	if request == nil {
		return motmedelErrors.NewWithTrace(cgiErrors.ErrNilRequest)
	}

	body := request.Body

	head := body
	if len(head) > excerptLength {
		head = head[:excerptLength]
	}

	tail := body
	if len(tail) > excerptLength {
		tail = tail[len(tail)-excerptLength:]
	}

	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "Received %d bytes\n", len(body))
	fmt.Fprintf(&buffer, "First 100 bytes: %s\n", head)
	fmt.Fprintf(&buffer, "Last  100 bytes: %s\n", tail)

	headers := header_set.New(
		header_set.Entry{Name: "Content-Type", Value: "text/plain"},
		header_set.Entry{Name: ReceivedBytesHeaderName, Value: strconv.Itoa(len(body))},
	)

	if err := emitter.EmitFixed(headers, buffer.Bytes()); err != nil {
		return fmt.Errorf("emitter emit fixed: %w", err)
	}

	return nil
}
