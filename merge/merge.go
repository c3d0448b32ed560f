// Package merge combines inferred openapi3 schemas. Example values coming
// from shape metadata produce one schema per observation; merging folds them
// into a single schema per position.
package merge

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Schema merges two schemas for the same position. Same-type schemas merge
// field by field; different types collapse into an anyOf.
func Schema(a, b *openapi3.Schema) *openapi3.Schema {
	if a == nil && b == nil {
		return nil
	}
	if a != nil && b == nil {
		return a
	}
	if a == nil && b != nil {
		return b
	}

	if a.Type == b.Type {
		return mergeSameType(a, b)
	}
	return mergeDifferentType(a, b)
}

func mergeSameType(a, b *openapi3.Schema) *openapi3.Schema {
	return &openapi3.Schema{
		Type:       a.Type,
		Format:     mergeString(a.Format, b.Format),
		Nullable:   a.Nullable || b.Nullable,
		Items:      SchemaRef(a.Items, b.Items),
		Required:   mergeRequired(a.Required, b.Required),
		Properties: Schemas(a.Properties, b.Properties),
	}
}

func mergeDifferentType(a, b *openapi3.Schema) *openapi3.Schema {
	variants := make(map[string]*openapi3.SchemaRef)
	for _, s := range []*openapi3.Schema{a, b} {
		if s.Type != "" {
			if prev, in := variants[s.Type]; in {
				variants[s.Type] = Schema(prev.Value, s).NewRef()
			} else {
				variants[s.Type] = s.NewRef()
			}
			continue
		}
		for _, v := range s.AnyOf {
			if prev, in := variants[v.Value.Type]; in {
				variants[v.Value.Type] = Schema(prev.Value, v.Value).NewRef()
			} else {
				variants[v.Value.Type] = v
			}
		}
	}

	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	anyOf := make(openapi3.SchemaRefs, 0, len(keys))
	for _, t := range keys {
		anyOf = append(anyOf, variants[t])
	}
	if len(anyOf) == 1 {
		return anyOf[0].Value
	}
	return &openapi3.Schema{AnyOf: anyOf}
}

// SchemaRef merges two schema refs. The inference path only produces inline
// values, so refs pointing elsewhere are not handled.
func SchemaRef(a, b *openapi3.SchemaRef) *openapi3.SchemaRef {
	if a == nil && b == nil {
		return nil
	}
	if a != nil && b == nil {
		return a
	}
	if a == nil && b != nil {
		return b
	}
	return Schema(a.Value, b.Value).NewRef()
}

// Schemas merges property maps key by key.
func Schemas(a, b openapi3.Schemas) openapi3.Schemas {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}

	rs := make(openapi3.Schemas, len(a))
	for k, v := range a {
		if w, in := b[k]; in {
			rs[k] = SchemaRef(v, w)
		} else {
			rs[k] = v
		}
	}
	for k, v := range b {
		if _, in := a[k]; !in {
			rs[k] = v
		}
	}
	return rs
}

// mergeRequired keeps only the fields required on both sides.
func mergeRequired(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	in := make(map[string]bool, len(a))
	for _, r := range a {
		in[r] = true
	}
	var res []string
	for _, r := range b {
		if in[r] {
			res = append(res, r)
		}
	}
	return res
}

func mergeString(a, b string) string {
	if a == b {
		return a
	}
	// conflicting formats are dropped rather than guessed
	return ""
}
