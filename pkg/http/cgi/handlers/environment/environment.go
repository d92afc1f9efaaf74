package environment

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	cgiErrors "github.com/Motmedel/cgi_go/pkg/http/cgi/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
)

const NotAvailable = "N/A"

// OptionalNames lists the meta-variables shown after the method, in display order. Unset ones
// are shown as NotAvailable.
var OptionalNames = []string{
	request.ScriptName,
	request.QueryString,
	request.ContentLength,
}

var page = template.Must(template.New("environment").Parse(`<html>
<head><title>CGI Test</title></head>
<body>
<h1>CGI is working!</h1>
<h2>Environment Variables:</h2>
<ul>
{{range .Variables}}<li>{{.Name}}: {{.Value}}</li>
{{end}}</ul>
{{if .PostData}}<h2>POST Data:</h2>
<pre>{{.PostData}}</pre>
{{end}}</body>
</html>
`))

type variable struct {
	Name  string
	Value string
}

type pageData struct {
	Variables []variable
	PostData  string
}

// Handler renders an HTML page with the main meta-variables and, for POST requests, the body.
type Handler struct{}

func (handler *Handler) Handle(ctx context.Context, cgiRequest *request.Request, emitter *emitter.Emitter) error {
	if cgiRequest == nil {
		return motmedelErrors.NewWithTrace(cgiErrors.ErrNilRequest)
	}

	data := pageData{Variables: []variable{{Name: request.RequestMethod, Value: cgiRequest.Method}}}
	for _, name := range OptionalNames {
		value, ok := cgiRequest.Environment.Lookup(name)
		if !ok {
			value = NotAvailable
		}
		data.Variables = append(data.Variables, variable{Name: name, Value: value})
	}

	if cgiRequest.Method == http.MethodPost && len(cgiRequest.Body) > 0 {
		data.PostData = string(cgiRequest.Body)
	}

	var buffer bytes.Buffer
	if err := page.Execute(&buffer, data); err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("template execute: %w", err))
	}

	headers := header_set.New(header_set.Entry{Name: "Content-Type", Value: "text/html"})
	if err := emitter.EmitFixed(headers, buffer.Bytes()); err != nil {
		return fmt.Errorf("emitter emit fixed: %w", err)
	}

	return nil
}
