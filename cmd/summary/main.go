package main

import (
	"github.com/Motmedel/cgi_go/pkg/http/cgi"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/summary"
)

func main() {
	cgi.Run(&summary.Handler{})
}
