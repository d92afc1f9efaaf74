package summary

import (
	"bytes"
	"context"
	"testing"

	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
	motmedelTestingCmp "github.com/Motmedel/cgi_go/pkg/testing/cmp"
)

func TestHandler_Handle(t *testing.T) {
	var output bytes.Buffer
	responseEmitter, err := emitter.New(&output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cgiRequest := &request.Request{
		Method:      "POST",
		PathInfo:    "/extra/path",
		QueryString: "a=1",
		Body:        []byte("name=John&age=30"),
	}

	if err := (&Handler{}).Handle(context.Background(), cgiRequest, responseEmitter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	motmedelTestingCmp.CompareOutput(
		t,
		output.Bytes(),
		[]byte(
			"Content-Type: text/plain\r\n\r\n"+
				"=== CGI Summary ===\n"+
				"Method : POST\n"+
				"Path   : /extra/path\n"+
				"Query  : a=1\n"+
				"Body   : name=John&age=30\n",
		),
	)
}
