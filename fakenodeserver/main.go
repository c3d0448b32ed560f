package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	host := flag.String("h", "", "the host to serve node records on")
	port := flag.String("p", "8080", "the port to serve node records on")
	flag.Parse()

	addr := fmt.Sprintf("%s:%s", *host, *port)
	log.Println("Serving fake node records at", addr)

	s := newServer()
	s.populateTestNodes()
	s.setupRoutes()

	return http.ListenAndServe(addr, s.router)
}
