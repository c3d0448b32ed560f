package nodemeta

import (
	"fmt"

	"github.com/valyala/fastjson"
)

// IDField is the record field carrying the stable record identifier.
const IDField = "id"

// TypeMetadata accumulates shape statistics for one logical node type. It has
// exactly one writer at a time: callers must serialize AddNode, DeleteNode and
// Ignore against a single instance. The descriptor tree is mutated in place.
type TypeMetadata struct {
	ignored       bool
	ignoredFields map[string]struct{}
	fieldMap      map[string]ValueDescriptor
	dirty         bool
}

// NewTypeMetadata returns empty metadata for a node type. Fields named in
// ignoredFields are excluded from tracking.
func NewTypeMetadata(ignoredFields ...string) *TypeMetadata {
	m := &TypeMetadata{
		ignoredFields: make(map[string]struct{}, len(ignoredFields)),
		fieldMap:      make(map[string]ValueDescriptor),
	}
	for _, f := range ignoredFields {
		m.ignoredFields[f] = struct{}{}
	}
	return m
}

// IgnoreField excludes a field name from tracking. Statistics already
// accumulated for the field are kept.
func (m *TypeMetadata) IgnoreField(name string) {
	m.ignoredFields[name] = struct{}{}
}

// Ignore sets the sticky ignored flag. While set, AddNode and DeleteNode are
// no-ops.
func (m *TypeMetadata) Ignore(flag bool) {
	m.ignored = flag
}

// Ignored reports whether mutation is currently disabled.
func (m *TypeMetadata) Ignored() bool {
	return m.ignored
}

// Dirty reports whether a structural change occurred since MarkClean: a type
// newly appearing or fully disappearing anywhere in the tree. Purely advisory;
// callers use it to skip re-deriving a schema when nothing structural changed.
func (m *TypeMetadata) Dirty() bool {
	return m.dirty
}

// MarkClean resets the dirty flag after the metadata has been observed.
func (m *TypeMetadata) MarkClean() {
	m.dirty = false
}

// AddNode folds one record into the metadata.
func (m *TypeMetadata) AddNode(node *fastjson.Value) error {
	return m.applyNode(node, opAdd)
}

// DeleteNode removes one previously added record. Every delete must be
// preceded by a matching add with the same identifier and field values; an
// unmatched delete is reported as an error and the offending counter is left
// untouched.
func (m *TypeMetadata) DeleteNode(node *fastjson.Value) error {
	return m.applyNode(node, opDel)
}

// AddNodes folds records left to right.
func (m *TypeMetadata) AddNodes(nodes []*fastjson.Value) error {
	for _, n := range nodes {
		if err := m.AddNode(n); err != nil {
			return err
		}
	}
	return nil
}

func (m *TypeMetadata) applyNode(node *fastjson.Value, o op) error {
	if m.ignored {
		return nil
	}

	obj, err := node.Object()
	if err != nil {
		return fmt.Errorf("node is not an object: %w", err)
	}
	id := string(node.GetStringBytes(IDField))

	var visitErr error
	obj.Visit(func(key []byte, v *fastjson.Value) {
		name := string(key)
		if _, skip := m.ignoredFields[name]; skip {
			return
		}
		desc, structural, err := updateValueDescriptor(m.fieldMap[name], name, v, id, o)
		if err != nil && visitErr == nil {
			visitErr = fmt.Errorf("field %s: %w", name, err)
		}
		if desc != nil {
			m.fieldMap[name] = desc
		}
		m.dirty = m.dirty || structural
	})

	return visitErr
}

// IsEmpty reports whether no field currently has any observations.
func (m *TypeMetadata) IsEmpty() bool {
	for _, desc := range m.fieldMap {
		for _, ti := range desc {
			if ti.Total > 0 {
				return false
			}
		}
	}
	return true
}

// FieldMap exposes the field descriptors for inspection. The returned map is
// the live tree; callers must not mutate it.
func (m *TypeMetadata) FieldMap() map[string]ValueDescriptor {
	return m.fieldMap
}
