package infer

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// ExampleSchema derives an openapi3 schema from one node type's example
// object, as produced by the metadata engine. Fields omitted from the example
// (unresolved or conflicted) are simply absent from the schema.
func ExampleSchema(example map[string]any) *openapi3.Schema {
	return objectSchema(example)
}

func objectSchema(obj map[string]any) *openapi3.Schema {
	props := make(map[string]*openapi3.Schema, len(obj))
	for k, v := range obj {
		props[k] = valueSchema(k, v)
	}
	return NewObjectSchema(props)
}

func valueSchema(key string, v any) *openapi3.Schema {
	switch val := v.(type) {
	case map[string]any:
		return objectSchema(val)
	case []any:
		elems := make([]*openapi3.Schema, len(val))
		for i, e := range val {
			elems[i] = valueSchema(key, e)
		}
		return NewArraySchema(elems)
	case []string:
		// listOfUnion fields synthesize as lists of referenced record ids
		elems := make([]*openapi3.Schema, len(val))
		for i, s := range val {
			elems[i] = NewStringSchema(key, s)
		}
		return NewArraySchema(elems)
	case string:
		return NewStringSchema(key, val)
	case bool:
		return NewBooleanSchema()
	case int64:
		return NewIntegerSchema()
	case int:
		return NewIntegerSchema()
	case float64:
		return NewNumberSchema()
	}
	return NewNullSchema()
}
