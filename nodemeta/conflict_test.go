package nodemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConflictLabels(t *testing.T) {
	assert.Equal(t, conflictLabel(TagInt), "number")
	assert.Equal(t, conflictLabel(TagFloat), "number")
	assert.Equal(t, conflictLabel(TagListOfUnion), "[string]")
	assert.Equal(t, conflictLabel(TagDate), "date")
	assert.Equal(t, conflictLabel(TagBoolean), "boolean")
	assert.Equal(t, conflictLabel(TagObject), "object")
}

func TestPrepareConflictExamplesScalars(t *testing.T) {
	desc := descriptorFor(t, "foo", `25`, `"x"`, `true`)
	out := prepareConflictExamples(desc, false)
	assert.Equal(t, out, []ConflictExample{
		{Type: "number", Value: int64(25)},
		{Type: "string", Value: "x"},
		{Type: "boolean", Value: true},
	})
}

func TestPrepareConflictExamplesObjectAndArray(t *testing.T) {
	desc := descriptorFor(t, "foo", `{"a": 1}`, `[2]`)
	out := prepareConflictExamples(desc, false)
	assert.Equal(t, out, []ConflictExample{
		{Type: "array", Value: []any{int64(2)}},
		{Type: "object", Value: map[string]any{"a": int64(1)}},
	})
}

func TestPrepareConflictExamplesListOfUnion(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "related___NODE": ["b", "a"]}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "related___NODE": {"weird": true}}`)))

	out := prepareConflictExamples(m.FieldMap()["related___NODE"], false)
	assert.Equal(t, out, []ConflictExample{
		{Type: "[string]", Value: []string{"a", "b"}},
		{Type: "object", Value: map[string]any{"weird": true}},
	})
}

func TestArrayItemConflictGroupedByOrigin(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "items": [25]}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "items": ["x"]}`)))

	r := &testReporter{}
	ex := m.ExampleObject("Widget", r)

	_, present := ex["items"]
	assert.False(t, present)

	assert.Equal(t, len(r.conflicts), 1)
	assert.Equal(t, r.conflicts[0].path, "Widget.items")
	assert.Equal(t, r.conflicts[0].examples, []ConflictExample{
		{Type: "[number]", Value: []any{int64(25)}},
		{Type: "[string]", Value: []any{"x"}},
	})
}

func TestArrayItemConflictSameOriginCombined(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "items": [25, "x"]}`)))

	r := &testReporter{}
	m.ExampleObject("Widget", r)

	assert.Equal(t, len(r.conflicts), 1)
	assert.Equal(t, r.conflicts[0].examples, []ConflictExample{
		{Type: "[number,string]", Value: []any{int64(25), "x"}},
	})
}

func TestFirstAttributionClearedOnDelete(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": 25}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": 7}`)))

	ti := m.FieldMap()["foo"][TagInt]
	assert.Equal(t, ti.FirstSeenIn(), "1")

	assert.Nil(t, m.DeleteNode(parseValue(t, `{"id": "1", "foo": 25}`)))
	assert.Equal(t, ti.FirstSeenIn(), "")
}
