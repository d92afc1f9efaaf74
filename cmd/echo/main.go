package main

import (
	"github.com/Motmedel/cgi_go/pkg/http/cgi"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/echo"
)

func main() {
	cgi.Run(&echo.Handler{})
}
