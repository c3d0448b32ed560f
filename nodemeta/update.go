package nodemeta

import (
	"fmt"

	"github.com/valyala/fastjson"
)

type op int

const (
	opAdd op = 1
	opDel op = -1
)

// updateValueDescriptor applies a single add/delete observation of v to desc.
// nodeID identifies the record the value belongs to. The returned descriptor
// replaces desc (it may be freshly allocated); structural is true iff a type
// newly appeared or fully disappeared anywhere in the subtree. A delete that
// would drive a counter negative is refused and reported, leaving the counter
// untouched.
func updateValueDescriptor(desc ValueDescriptor, key string, v *fastjson.Value, nodeID string, o op) (ValueDescriptor, bool, error) {
	tag := classifyValue(key, v)
	if tag == TagNull {
		return desc, false, nil
	}

	if o == opDel {
		ti, ok := desc[tag]
		if !ok || ti.Total == 0 {
			return desc, false, fmt.Errorf("delete of %s value at %q without matching add", tag, key)
		}
	}

	desc, ti := desc.typeInfo(tag)
	ti.Total += int(o)
	structural := (o == opAdd && ti.Total == 1) || (o == opDel && ti.Total == 0)

	if o == opAdd {
		if ti.first == "" {
			ti.first = nodeID
		}
	} else if ti.first == nodeID || ti.Total == 0 {
		ti.first = ""
	}

	var err error
	switch tag {
	case TagObject:
		structural, err = updateObject(ti, v, nodeID, o, structural)
	case TagArray:
		structural, err = updateArray(ti, key, v, nodeID, o, structural)
	case TagListOfUnion:
		structural, err = updateListOfUnion(ti, key, v, o, structural)
	case TagString, TagDate:
		s := string(v.GetStringBytes())
		if tag == TagString && s == "" {
			ti.Empty += int(o)
		}
		if o == opAdd && ti.Example == nil {
			ti.Example = s
		}
	case TagInt:
		if o == opAdd && ti.Example == nil {
			if i, intErr := v.Int64(); intErr == nil {
				ti.Example = i
			} else {
				// int-classified literals like 3.0 only parse as floats
				f, _ := v.Float64()
				ti.Example = int64(f)
			}
		}
	case TagFloat:
		if o == opAdd && ti.Example == nil {
			f, _ := v.Float64()
			ti.Example = f
		}
	case TagBoolean:
		if o == opAdd && ti.Example == nil {
			ti.Example = v.Type() == fastjson.TypeTrue
		}
	}

	return desc, structural, err
}

func updateObject(ti *TypeInfo, v *fastjson.Value, nodeID string, o op, structural bool) (bool, error) {
	obj, err := v.Object()
	if err != nil {
		return structural, err
	}
	if ti.Props == nil {
		ti.Props = make(map[string]ValueDescriptor)
	}

	var visitErr error
	obj.Visit(func(key []byte, pv *fastjson.Value) {
		name := string(key)
		child, s, err := updateValueDescriptor(ti.Props[name], name, pv, nodeID, o)
		if err != nil && visitErr == nil {
			visitErr = fmt.Errorf("%s: %w", name, err)
		}
		if child != nil {
			ti.Props[name] = child
		}
		structural = structural || s
	})

	return structural, visitErr
}

func updateArray(ti *TypeInfo, key string, v *fastjson.Value, nodeID string, o op, structural bool) (bool, error) {
	var firstErr error
	for _, ev := range v.GetArray() {
		item, s, err := updateValueDescriptor(ti.Item, key, ev, nodeID, o)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if item != nil {
			ti.Item = item
		}
		structural = structural || s
	}
	return structural, firstErr
}

func updateListOfUnion(ti *TypeInfo, key string, v *fastjson.Value, o op, structural bool) (bool, error) {
	if ti.Nodes == nil {
		ti.Nodes = make(map[string]int)
	}

	var firstErr error
	for _, ev := range v.GetArray() {
		id := string(ev.GetStringBytes())
		if id == "" {
			continue
		}
		c := ti.Nodes[id]
		if o == opDel && c == 0 {
			if firstErr == nil {
				firstErr = fmt.Errorf("delete of node reference %q at %q without matching add", id, key)
			}
			continue
		}
		c += int(o)
		ti.Nodes[id] = c

		// Per-id 0/1 transitions over-report structural change when two ids
		// resolve to the same node type. Consumers rely on the conservative
		// signal, so this is not corrected.
		if (o == opAdd && c == 1) || (o == opDel && c == 0) {
			structural = true
		}
	}

	return structural, firstErr
}
