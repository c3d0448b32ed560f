package nodemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type collectedConflict struct {
	path     string
	examples []ConflictExample
}

type testReporter struct {
	conflicts []collectedConflict
}

func (r *testReporter) AddConflict(path string, examples []ConflictExample) {
	r.conflicts = append(r.conflicts, collectedConflict{path: path, examples: examples})
}

func TestExampleObjectScalars(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "n": 25, "f": 1.5, "s": "hi", "b": true, "d": "2019-08-01"}`)))

	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex, map[string]any{
		"id": "1",
		"n":  int64(25),
		"f":  1.5,
		"s":  "hi",
		"b":  true,
		"d":  "2019-08-01",
	})
}

func TestExampleObjectConflictSurfaced(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": 25}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": "x"}`)))

	r := &testReporter{}
	ex := GetExampleObject(m.FieldMap(), "", r)

	assert.Equal(t, len(r.conflicts), 1)
	assert.Equal(t, r.conflicts[0].path, ".foo")
	assert.Equal(t, r.conflicts[0].examples, []ConflictExample{
		{Type: "number", Value: int64(25)},
		{Type: "string", Value: "x"},
	})

	_, present := ex["foo"]
	assert.False(t, present)
}

func TestExampleNumericWideningUsesFirstExample(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": 1}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": 1.5}`)))

	r := &testReporter{}
	ex := m.ExampleObject("Widget", r)

	assert.Equal(t, len(r.conflicts), 0)
	assert.Equal(t, ex["foo"], int64(1))
}

func TestExampleNumericWideningFloatFirst(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": 1.5}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": 1}`)))

	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["foo"], 1.5)
}

func TestExampleDateStringMix(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": "2019-08-01"}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": ""}`)))

	// all observed strings empty, so the date wins with its stored example
	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["foo"], "2019-08-01")
}

func TestExampleDateStringMixFallback(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": ""}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": "2019-08-01"}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "3", "foo": "hello"}`)))

	// string wins but its stored example is the empty first observation
	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["foo"], mixedStringExample)
}

func TestExampleWideningIgnoresDeletedInt(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": 1}`)))
	assert.Nil(t, m.DeleteNode(parseValue(t, `{"id": "1", "foo": 1}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": 1.5}`)))

	// the int observation is gone, so float wins alone and its own example
	// applies
	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["foo"], 1.5)
}

func TestExampleStringAfterDeletedDate(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "foo": ""}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "foo": "2019-08-01"}`)))
	assert.Nil(t, m.DeleteNode(parseValue(t, `{"id": "2", "foo": "2019-08-01"}`)))

	// with the date gone, string wins alone; no mix fallback, the stored
	// example stands even though it is empty
	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["foo"], "")
}

func TestExampleArray(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "tags": ["a", "b", "c"]}`)))

	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["tags"], []any{"a"})
}

func TestExampleNestedObject(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "meta": {"width": 10, "label": "x", "skip": null}}`)))

	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["meta"], map[string]any{"width": int64(10), "label": "x"})
}

func TestExampleNestedConflictPath(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "meta": {"width": 10}}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "meta": {"width": "wide"}}`)))

	r := &testReporter{}
	ex := m.ExampleObject("Widget", r)

	assert.Equal(t, len(r.conflicts), 1)
	assert.Equal(t, r.conflicts[0].path, "Widget.meta.width")
	assert.Equal(t, ex["meta"], map[string]any{})
}

func TestExampleListOfUnion(t *testing.T) {
	m := NewTypeMetadata()
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "1", "related___NODE": ["b", "a"]}`)))
	assert.Nil(t, m.AddNode(parseValue(t, `{"id": "2", "related___NODE": ["c"]}`)))
	assert.Nil(t, m.DeleteNode(parseValue(t, `{"id": "2", "related___NODE": ["c"]}`)))

	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex["related___NODE"], []string{"a", "b"})
}

func TestExampleOmitsEmptyFields(t *testing.T) {
	m := NewTypeMetadata()
	n := `{"id": "1", "foo": 25}`
	assert.Nil(t, m.AddNode(parseValue(t, n)))
	assert.Nil(t, m.DeleteNode(parseValue(t, n)))

	ex := m.ExampleObject("Widget", nil)
	assert.Equal(t, ex, map[string]any{})
}
