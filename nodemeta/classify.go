package nodemeta

import (
	"math"
	"regexp"
	"strings"

	"github.com/valyala/fastjson"
)

// ListOfUnionSuffix marks a field as holding a list of foreign-record ids
// rather than plain values.
const ListOfUnionSuffix = "___NODE"

// Anchored ISO-8601-ish date: a calendar date with an optional time and zone.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2}(\.\d{1,9})?)?(Z|[+-]\d{2}:?\d{2})?)?$`)

func looksLikeDate(s string) bool {
	return dateRe.MatchString(s)
}

// classifyValue maps a raw value and its field key to one semantic type tag.
// Unrecognized or structurally empty shapes classify as TagNull; it never
// fails.
func classifyValue(key string, v *fastjson.Value) Tag {
	if v == nil {
		return TagNull
	}

	switch v.Type() {
	case fastjson.TypeNull:
		return TagNull
	case fastjson.TypeTrue, fastjson.TypeFalse:
		return TagBoolean
	case fastjson.TypeNumber:
		f, err := v.Float64()
		if err != nil {
			return TagNull
		}
		if f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
			return TagInt
		}
		return TagFloat
	case fastjson.TypeString:
		if looksLikeDate(string(v.GetStringBytes())) {
			return TagDate
		}
		return TagString
	case fastjson.TypeArray:
		a := v.GetArray()
		if len(a) == 0 {
			return TagNull
		}
		if strings.HasSuffix(key, ListOfUnionSuffix) {
			return TagListOfUnion
		}
		return TagArray
	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil || o.Len() == 0 {
			return TagNull
		}
		return TagObject
	}

	return TagNull
}
