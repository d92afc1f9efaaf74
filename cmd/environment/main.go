package main

import (
	"github.com/Motmedel/cgi_go/pkg/http/cgi"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/environment"
)

func main() {
	cgi.Run(&environment.Handler{})
}
