package main

import (
	"github.com/Motmedel/cgi_go/pkg/http/cgi"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/chunked"
)

func main() {
	cgi.Run(chunked.New())
}
