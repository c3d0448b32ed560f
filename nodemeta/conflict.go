package nodemeta

import "strings"

// prepareConflictExamples formats the alternatives observed at a conflicting
// position. When the position is an array item, candidates are grouped by the
// record credited with introducing them, so the report does not imply that
// values first seen in different source records coexisted inside one array.
func prepareConflictExamples(desc ValueDescriptor, isArrayItem bool) []ConflictExample {
	var tags []Tag
	for _, t := range tagOrder {
		if ti, ok := desc[t]; ok && ti.Total > 0 {
			tags = append(tags, t)
		}
	}

	if !isArrayItem {
		out := make([]ConflictExample, 0, len(tags))
		for _, t := range tags {
			out = append(out, ConflictExample{
				Type:  conflictLabel(t),
				Value: conflictValue(t, desc[t]),
			})
		}
		return out
	}

	// one combined entry per originating record group, in encounter order
	var order []string
	groups := make(map[string][]Tag)
	for _, t := range tags {
		id := desc[t].FirstSeenIn()
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], t)
	}

	out := make([]ConflictExample, 0, len(order))
	for _, id := range order {
		labels := make([]string, 0, len(groups[id]))
		values := make([]any, 0, len(groups[id]))
		for _, t := range groups[id] {
			labels = append(labels, conflictLabel(t))
			values = append(values, conflictValue(t, desc[t]))
		}
		out = append(out, ConflictExample{
			Type:  "[" + strings.Join(labels, ",") + "]",
			Value: values,
		})
	}
	return out
}

func conflictLabel(t Tag) string {
	switch t {
	case TagInt, TagFloat:
		return "number"
	case TagListOfUnion:
		return "[string]"
	}
	return t.String()
}

func conflictValue(t Tag, ti *TypeInfo) any {
	switch t {
	case TagObject:
		return exampleObjectFromProps(ti.Props, nil, "")
	case TagArray:
		if item := buildExampleValue(ti.Item, nil, true, ""); item != nil {
			return []any{item}
		}
		return []any{}
	case TagListOfUnion:
		return referencedIDs(ti)
	}
	return ti.Example
}
