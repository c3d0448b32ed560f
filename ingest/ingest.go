// Package ingest feeds record add/delete events into per-type shape metadata.
// It owns one TypeMetadata per node type, applies global ignore rules, and
// serializes all mutation so the engine's single-writer contract holds.
package ingest

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fastjson"

	"github.com/siegeai/nodeshape/nodemeta"
)

// Tracker routes records to the metadata of their node type.
type Tracker struct {
	mu            sync.Mutex
	log           *slog.Logger
	types         map[string]*nodemeta.TypeMetadata
	ignoredTypes  map[string]struct{}
	ignoredFields []string
	parsers       fastjson.ParserPool
	metrics       *metrics
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the tracker's logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) { t.log = log }
}

// WithRegisterer registers the tracker's counters with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(t *Tracker) { t.metrics = newMetrics(reg) }
}

// WithIgnoredFields excludes field names from tracking in every node type.
func WithIgnoredFields(fields ...string) Option {
	return func(t *Tracker) { t.ignoredFields = append(t.ignoredFields, fields...) }
}

// WithIgnoredTypes marks node types as ignored from the start.
func WithIgnoredTypes(names ...string) Option {
	return func(t *Tracker) {
		for _, n := range names {
			t.ignoredTypes[n] = struct{}{}
		}
	}
}

// NewTracker returns an empty tracker.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		log:          slog.Default(),
		types:        make(map[string]*nodemeta.TypeMetadata),
		ignoredTypes: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add folds one record into its node type's metadata.
func (t *Tracker) Add(typeName string, node *fastjson.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	md := t.metadata(typeName)
	wasDirty := md.Dirty()
	err := md.AddNode(node)
	t.observe(typeName, "add", md, wasDirty, err)
	return err
}

// Delete removes one previously added record from its node type's metadata.
func (t *Tracker) Delete(typeName string, node *fastjson.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	md, ok := t.types[typeName]
	if !ok {
		return fmt.Errorf("delete for unknown node type %q", typeName)
	}
	wasDirty := md.Dirty()
	err := md.DeleteNode(node)
	t.observe(typeName, "del", md, wasDirty, err)
	return err
}

// AddBytes parses a JSON record and adds it. The parsed value is only valid
// for the duration of the call.
func (t *Tracker) AddBytes(typeName string, b []byte) error {
	p := t.parsers.Get()
	defer t.parsers.Put(p)

	v, err := p.ParseBytes(b)
	if err != nil {
		return fmt.Errorf("parse record: %w", err)
	}
	return t.Add(typeName, v)
}

// DeleteBytes parses a JSON record and deletes it.
func (t *Tracker) DeleteBytes(typeName string, b []byte) error {
	p := t.parsers.Get()
	defer t.parsers.Put(p)

	v, err := p.ParseBytes(b)
	if err != nil {
		return fmt.Errorf("parse record: %w", err)
	}
	return t.Delete(typeName, v)
}

// IgnoreType marks a node type ignored. Subsequent adds and deletes for it
// are no-ops until UnignoreType.
func (t *Tracker) IgnoreType(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ignoredTypes[name] = struct{}{}
	t.metadata(name).Ignore(true)
}

// UnignoreType re-enables tracking for a node type.
func (t *Tracker) UnignoreType(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.ignoredTypes, name)
	if md, ok := t.types[name]; ok {
		md.Ignore(false)
	}
}

// Metadata returns the metadata for a node type, or nil if the type was never
// seen. The caller must not mutate it concurrently with tracker operations.
func (t *Tracker) Metadata(name string) *nodemeta.TypeMetadata {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.types[name]
}

// Types lists all node types seen so far, sorted.
func (t *Tracker) Types() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(t.types))
	for n := range t.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ExampleObjects synthesizes one example object per non-ignored, non-empty
// node type, forwarding conflicts to r, and marks each visited metadata
// clean. r may be nil.
func (t *Tracker) ExampleObjects(r nodemeta.ConflictReporter) map[string]map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]map[string]any, len(t.types))
	for name, md := range t.types {
		if md.Ignored() || md.IsEmpty() {
			continue
		}
		out[name] = md.ExampleObject(name, r)
		md.MarkClean()
	}
	return out
}

// metadata returns the type's metadata, creating it on first sight. Callers
// hold t.mu.
func (t *Tracker) metadata(name string) *nodemeta.TypeMetadata {
	md, ok := t.types[name]
	if !ok {
		md = nodemeta.NewTypeMetadata(t.ignoredFields...)
		if _, ignored := t.ignoredTypes[name]; ignored {
			md.Ignore(true)
		}
		t.types[name] = md
		t.log.Debug("tracking new node type", "type", name)
	}
	return md
}

func (t *Tracker) observe(typeName, op string, md *nodemeta.TypeMetadata, wasDirty bool, err error) {
	if err != nil {
		t.log.Warn("record update failed", "type", typeName, "op", op, "err", err)
	}
	if t.metrics == nil {
		return
	}
	t.metrics.nodes.WithLabelValues(typeName, op).Inc()
	if err != nil {
		t.metrics.updateErrors.Inc()
	}
	if !wasDirty && md.Dirty() {
		t.metrics.structuralChanges.WithLabelValues(typeName).Inc()
	}
}
