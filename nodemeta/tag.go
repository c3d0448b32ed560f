// Package nodemeta incrementally tracks the shape of a stream of JSON-like
// records sharing one logical node type. For every field it records which
// semantic types have been observed, how often, and a representative example,
// under constant-time-per-field insertion and removal of individual records.
// A single example object per node type can then be synthesized from the
// accumulated statistics.
package nodemeta

// Tag is a semantic type observed at one field position. The set is closed;
// code switching on a Tag should handle every constant below.
type Tag int

const (
	// TagNull carries no structural information and is never stored in a
	// descriptor.
	TagNull Tag = iota
	TagInt
	TagFloat
	TagDate
	TagString
	TagBoolean
	TagArray
	TagListOfUnion
	TagObject
)

// tagOrder fixes iteration order over descriptor maps so that resolution and
// conflict reports are deterministic.
var tagOrder = [...]Tag{
	TagInt,
	TagFloat,
	TagDate,
	TagString,
	TagBoolean,
	TagArray,
	TagListOfUnion,
	TagObject,
}

func (t Tag) String() string {
	switch t {
	case TagNull:
		return "null"
	case TagInt:
		return "int"
	case TagFloat:
		return "float"
	case TagDate:
		return "date"
	case TagString:
		return "string"
	case TagBoolean:
		return "boolean"
	case TagArray:
		return "array"
	case TagListOfUnion:
		return "listOfUnion"
	case TagObject:
		return "object"
	}
	return "unknown"
}
