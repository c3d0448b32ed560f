package main

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// server hands out synthetic node records for feeding the shape tracker by
// hand. Some generated fields deliberately flip types so conflict reporting
// can be exercised end to end.
type server struct {
	router *mux.Router
	nodes  map[string][]map[string]any
}

func newServer() server {
	return server{
		router: mux.NewRouter(),
		nodes:  make(map[string][]map[string]any),
	}
}

func (s *server) populateTestNodes() {
	authorID := uuid.NewString()
	s.nodes["Author"] = []map[string]any{
		{
			"id":   authorID,
			"name": "Jeremy Bearimy",
			"born": "1982-04-01",
		},
	}
	s.nodes["Widget"] = []map[string]any{
		{
			"id":            uuid.NewString(),
			"title":         "Gizmo",
			"size":          3,
			"tags":          []any{"convoluted", "cyclical"},
			"author___NODE": []any{authorID},
			"meta":          map[string]any{"width": 10, "height": 4},
		},
		{
			"id":            uuid.NewString(),
			"title":         "Doodad",
			"size":          "large", // conflicts with Gizmo's numeric size
			"tags":          []any{"abused"},
			"author___NODE": []any{authorID},
			"meta":          map[string]any{"width": 7.5},
		},
	}
}

func (s *server) randomNode(typeName string) map[string]any {
	pool := s.nodes[typeName]
	if len(pool) == 0 {
		return nil
	}
	return pool[rand.Intn(len(pool))]
}
