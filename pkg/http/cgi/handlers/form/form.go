package form

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	motmedelErrors "github.com/Motmedel/cgi_go/pkg/errors"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/form/form_config"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/header_set"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
)

//go:embed form.html
var pageSource string

var page = template.Must(template.New("form").Parse(pageSource))

// Handler serves a static HTML form that posts a name and an age.
type Handler struct {
	config *form_config.Config
}

func (handler *Handler) getConfig() *form_config.Config {
	if handler.config == nil {
		return form_config.New()
	}
	return handler.config
}

func (handler *Handler) Handle(ctx context.Context, _ *request.Request, emitter *emitter.Emitter) error {
	config := handler.getConfig()

	var buffer bytes.Buffer
	if err := page.Execute(&buffer, config); err != nil {
		return motmedelErrors.NewWithTrace(fmt.Errorf("template execute: %w", err), config)
	}

	headers := header_set.New(header_set.Entry{Name: "Content-Type", Value: "text/html"})
	if err := emitter.EmitFixed(headers, buffer.Bytes()); err != nil {
		return fmt.Errorf("emitter emit fixed: %w", err)
	}

	return nil
}

func New(options ...form_config.Option) *Handler {
	return &Handler{config: form_config.New(options...)}
}
