// Package conflicts provides ConflictReporter implementations for the
// metadata engine: a collector for batch reporting and tests, and a reporter
// that forwards to slog.
package conflicts

import (
	"log/slog"

	"github.com/siegeai/nodeshape/nodemeta"
)

// Conflict is one recorded type conflict.
type Conflict struct {
	Path     string                     `json:"path"`
	Examples []nodemeta.ConflictExample `json:"examples"`
}

// Collector accumulates conflicts in the order they were reported. The zero
// value is ready to use.
type Collector struct {
	conflicts []Conflict
}

var _ nodemeta.ConflictReporter = (*Collector)(nil)

func (c *Collector) AddConflict(path string, examples []nodemeta.ConflictExample) {
	c.conflicts = append(c.conflicts, Conflict{Path: path, Examples: examples})
}

// Conflicts returns everything reported so far.
func (c *Collector) Conflicts() []Conflict {
	return c.conflicts
}

// Reset discards collected conflicts so the collector can be reused across
// example-building passes.
func (c *Collector) Reset() {
	c.conflicts = c.conflicts[:0]
}

// LogReporter forwards conflicts to a slog logger at warn level.
type LogReporter struct {
	log *slog.Logger
}

var _ nodemeta.ConflictReporter = (*LogReporter)(nil)

// NewLogReporter wraps log; a nil logger means slog.Default.
func NewLogReporter(log *slog.Logger) *LogReporter {
	if log == nil {
		log = slog.Default()
	}
	return &LogReporter{log: log}
}

func (r *LogReporter) AddConflict(path string, examples []nodemeta.ConflictExample) {
	types := make([]string, len(examples))
	for i, e := range examples {
		types[i] = e.Type
	}
	r.log.Warn("type conflict", "path", path, "types", types)
}
