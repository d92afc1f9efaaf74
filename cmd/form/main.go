package main

import (
	"github.com/Motmedel/cgi_go/pkg/http/cgi"
	"github.com/Motmedel/cgi_go/pkg/http/cgi/handlers/form"
)

func main() {
	cgi.Run(form.New())
}
