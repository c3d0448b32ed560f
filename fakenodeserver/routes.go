package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/urfave/negroni"
)

func (s *server) setupRoutes() {
	s.router.HandleFunc("/", s.handleRoot())
	s.router.HandleFunc("/types", s.handleGetTypes()).Methods("GET")
	s.router.HandleFunc("/nodes/{type}", s.handleGetNodes()).Methods("GET")
	s.router.HandleFunc("/nodes/{type}/random", s.handleGetRandomNode()).Methods("GET")
	s.router.HandleFunc("/nodes/{type}", s.handleCreateNode()).Methods("POST")
	s.router.Use(logMiddleware)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := negroni.NewResponseWriter(w)
		next.ServeHTTP(ww, r)
		log.Println(r.Method, r.RequestURI, r.Proto, "->", ww.Status(), http.StatusText(ww.Status()))
	})
}

func (*server) handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Fake node records, help yourself")
	}
}

func (s *server) handleGetTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types := make([]string, 0, len(s.nodes))
		for t := range s.nodes {
			types = append(types, t)
		}
		json.NewEncoder(w).Encode(types)
	}
}

func (s *server) handleGetNodes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typeName := mux.Vars(r)["type"]
		pool, ok := s.nodes[typeName]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(pool)
	}
}

func (s *server) handleGetRandomNode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := s.randomNode(mux.Vars(r)["type"])
		if n == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(n)
	}
}

func (s *server) handleCreateNode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typeName := mux.Vars(r)["type"]

		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var node map[string]any
		if err := json.Unmarshal(body, &node); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.nodes[typeName] = append(s.nodes[typeName], node)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(node)
	}
}
