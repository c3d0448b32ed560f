package nodemeta

import "sort"

// ConflictExample is one alternative reported for a conflicting field.
type ConflictExample struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// ConflictReporter receives per-field conflict reports during example
// building, in field visit order. Implementations decide whether to collect,
// log or drop them; the engine never aggregates conflicts itself.
type ConflictReporter interface {
	AddConflict(path string, examples []ConflictExample)
}

// Fallback examples for the benign date/string coercion, used when the stored
// example is unusable: a date winner with no stored value, or a string winner
// whose first observed string was empty.
const (
	mixedDateExample   = "1970-01-01T00:00:00.000Z"
	mixedStringExample = "String"
)

// ExampleValue synthesizes one representative value for a field from its
// descriptor, or nil when the field resolves to nothing. A conflicting field
// yields nil after the conflict is forwarded to r; r may be nil.
func ExampleValue(desc ValueDescriptor, r ConflictReporter, path string) any {
	return buildExampleValue(desc, r, false, path)
}

func buildExampleValue(desc ValueDescriptor, r ConflictReporter, isArrayItem bool, path string) any {
	winner, conflict := resolveWinnerType(desc)
	if conflict && r != nil {
		r.AddConflict(path, prepareConflictExamples(desc, isArrayItem))
	}

	switch winner {
	case TagNull:
		return nil
	case TagInt, TagBoolean:
		return desc[winner].Example
	case TagFloat:
		ti := desc[TagFloat]
		// under numeric widening the example is the first numeric value
		// recorded, which may live on the int type-info; an int entry whose
		// observations were all deleted no longer takes part
		if iti, ok := desc[TagInt]; ok && iti.Total > 0 && iti.ord < ti.ord && iti.Example != nil {
			return iti.Example
		}
		return ti.Example
	case TagDate:
		ti := desc[TagDate]
		if ti.Example == nil {
			return mixedDateExample
		}
		return ti.Example
	case TagString:
		ti := desc[TagString]
		s, _ := ti.Example.(string)
		if dti, ok := desc[TagDate]; ok && dti.Total > 0 && s == "" {
			return mixedStringExample
		}
		return ti.Example
	case TagArray:
		item := buildExampleValue(desc[TagArray].Item, r, true, path)
		if item == nil {
			return nil
		}
		return []any{item}
	case TagListOfUnion:
		return referencedIDs(desc[TagListOfUnion])
	case TagObject:
		return exampleObjectFromProps(desc[TagObject].Props, r, path)
	}

	return nil
}

func exampleObjectFromProps(props map[string]ValueDescriptor, r ConflictReporter, path string) map[string]any {
	obj := make(map[string]any, len(props))
	for _, name := range sortedKeys(props) {
		if v := buildExampleValue(props[name], r, false, path+"."+name); v != nil {
			obj[name] = v
		}
	}
	return obj
}

// referencedIDs lists the ids whose residual count is still positive.
func referencedIDs(ti *TypeInfo) []string {
	ids := make([]string, 0, len(ti.Nodes))
	for id, c := range ti.Nodes {
		if c > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// GetExampleObject builds one example value per field, omitting fields that
// resolve to nothing, and returns a single example object for the node type.
// Conflict paths are prefixed with typeName.
func GetExampleObject(fieldMap map[string]ValueDescriptor, typeName string, r ConflictReporter) map[string]any {
	out := make(map[string]any, len(fieldMap))
	for _, name := range sortedKeys(fieldMap) {
		if v := buildExampleValue(fieldMap[name], r, false, typeName+"."+name); v != nil {
			out[name] = v
		}
	}
	return out
}

// ExampleObject builds the example object for this node type's field map.
func (m *TypeMetadata) ExampleObject(typeName string, r ConflictReporter) map[string]any {
	return GetExampleObject(m.fieldMap, typeName, r)
}

func sortedKeys(m map[string]ValueDescriptor) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
