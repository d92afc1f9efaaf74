package handler

import (
	"context"

	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/emitter"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/types/request"
)

// Handler produces the response to one request through the emitter.
type Handler interface {
	Handle(ctx context.Context, request *request.Request, emitter *emitter.Emitter) error
}

type HandlerFunc func(context.Context, *request.Request, *emitter.Emitter) error

func (handlerFunc HandlerFunc) Handle(ctx context.Context, request *request.Request, emitter *emitter.Emitter) error {
	return handlerFunc(ctx, request, emitter)
}
