// Package infer turns example objects produced by the shape metadata engine
// into openapi3 schemas.
package infer

import (
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"

	"github.com/siegeai/nodeshape/merge"
)

func NewObjectSchema(props map[string]*openapi3.Schema) *openapi3.Schema {
	ps := make(map[string]*openapi3.SchemaRef, len(props))
	rs := make([]string, 0, len(props))
	for k, v := range props {
		ps[k] = v.NewRef()
		rs = append(rs, k)
	}
	return &openapi3.Schema{
		Type:       openapi3.TypeObject,
		Required:   rs,
		Properties: ps,
	}
}

func NewArraySchema(elems []*openapi3.Schema) *openapi3.Schema {
	var item *openapi3.Schema
	for _, e := range elems {
		item = merge.Schema(item, e)
	}
	var ref *openapi3.SchemaRef
	if item != nil {
		ref = item.NewRef()
	}
	return &openapi3.Schema{
		Type:  openapi3.TypeArray,
		Items: ref,
	}
}

func NewStringSchema(key, s string) *openapi3.Schema {
	sch := &openapi3.Schema{Type: openapi3.TypeString}
	if _, err := uuid.Parse(s); err == nil {
		sch.Format = "uuid"
	} else if _, err := time.Parse(time.RFC3339, s); err == nil {
		sch.Format = "date-time"
	} else if _, err := time.Parse("2006-01-02", s); err == nil {
		sch.Format = "date"
	} else if keyLooksLikeID(key) {
		sch.Format = "uuid"
	}
	return sch
}

func NewIntegerSchema() *openapi3.Schema {
	return &openapi3.Schema{Type: openapi3.TypeInteger}
}

func NewNumberSchema() *openapi3.Schema {
	return &openapi3.Schema{Type: openapi3.TypeNumber}
}

func NewBooleanSchema() *openapi3.Schema {
	return &openapi3.Schema{Type: openapi3.TypeBoolean}
}

func NewNullSchema() *openapi3.Schema {
	return &openapi3.Schema{Nullable: true}
}

func keyLooksLikeID(key string) bool {
	lowerKey := strings.ToLower(key)
	if !strings.HasSuffix(lowerKey, "id") {
		return false
	}
	l := len(key)
	if l <= 2 {
		return true
	}
	if key[l-3] == '-' || key[l-3] == '_' {
		// some-id or some_id
		return true
	}
	if key[l-2] == 'I' && !('A' <= key[l-3] && key[l-3] <= 'Z') {
		// someID
		return true
	}
	return false
}
