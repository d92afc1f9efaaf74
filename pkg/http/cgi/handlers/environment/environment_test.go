package environment

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
	motmedelTestingCmp "github.com/Motmedel/cgi_go/pkg/testing/cmp"
)

func handle(t *testing.T, environment request.Environment, body string) string {
	t.Helper()

	cgiRequest, err := request.New(environment, strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var output bytes.Buffer
	responseEmitter, err := emitter.New(&output)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (&Handler{}).Handle(context.Background(), cgiRequest, responseEmitter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return output.String()
}

func TestHandler_Handle(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		output := handle(
			t,
			request.Environment{
				request.RequestMethod: "GET",
				request.ScriptName:    "/cgi-bin/test.py",
				request.QueryString:   "a=1",
			},
			"",
		)

		motmedelTestingCmp.CompareOutput(
			t,
			[]byte(output),
			[]byte(
				"Content-Type: text/html\r\n\r\n"+
					"<html>\n"+
					"<head><title>CGI Test</title></head>\n"+
					"<body>\n"+
					"<h1>CGI is working!</h1>\n"+
					"<h2>Environment Variables:</h2>\n"+
					"<ul>\n"+
					"<li>REQUEST_METHOD: GET</li>\n"+
					"<li>SCRIPT_NAME: /cgi-bin/test.py</li>\n"+
					"<li>QUERY_STRING: a=1</li>\n"+
					"<li>CONTENT_LENGTH: N/A</li>\n"+
					"</ul>\n"+
					"</body>\n"+
					"</html>\n",
			),
		)
	})

	t.Run("post data is shown escaped", func(t *testing.T) {
		output := handle(
			t,
			request.Environment{
				request.RequestMethod: "POST",
				request.ContentLength: "12",
			},
			"<b>name</b>&",
		)

		for _, expected := range []string{
			"<li>CONTENT_LENGTH: 12</li>\n",
			"<li>QUERY_STRING: N/A</li>\n",
			"<h2>POST Data:</h2>\n<pre>&lt;b&gt;name&lt;/b&gt;&amp;</pre>\n",
		} {
			if !strings.Contains(output, expected) {
				t.Errorf("output %q does not contain %q", output, expected)
			}
		}
	})

	t.Run("body of other methods is not shown", func(t *testing.T) {
		output := handle(
			t,
			request.Environment{
				request.RequestMethod: "PUT",
				request.ContentLength: "4",
			},
			"data",
		)

		if strings.Contains(output, "POST Data") {
			t.Errorf("output %q contains POST data", output)
		}
	})

	t.Run("method with unset optional variables", func(t *testing.T) {
		var output bytes.Buffer
		responseEmitter, err := emitter.New(&output)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cgiRequest := &request.Request{Method: "HEAD", Environment: request.Environment{}}
		if err := (&Handler{}).Handle(context.Background(), cgiRequest, responseEmitter); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, expected := range []string{
			"<li>REQUEST_METHOD: HEAD</li>\n",
			"<li>SCRIPT_NAME: N/A</li>\n",
			"<li>QUERY_STRING: N/A</li>\n",
			"<li>CONTENT_LENGTH: N/A</li>\n",
		} {
			if !strings.Contains(output.String(), expected) {
				t.Errorf("output %q does not contain %q", output.String(), expected)
			}
		}
	})
}
