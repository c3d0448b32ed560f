package nodemeta

// ValueDescriptor records everything ever observed at one field position: a
// record field, an array element position, or a nested object property. A
// missing tag means that type was never observed there; a nil map means the
// position itself was never observed.
type ValueDescriptor map[Tag]*TypeInfo

// TypeInfo holds the statistics for one semantic type at one position.
type TypeInfo struct {
	// Total counts the values of this type currently contributing to the
	// field. It never goes negative; an unmatched delete is refused.
	Total int

	// Example is one representative raw value for scalar types, set from the
	// first value observed and never overwritten, even across deletions.
	Example any

	// Empty counts empty-string occurrences. String type only.
	Empty int

	// Props maps property names to nested descriptors. Object type only.
	Props map[string]ValueDescriptor

	// Item summarizes all elements seen across all arrays at this position.
	// Array type only.
	Item ValueDescriptor

	// Nodes maps referenced record ids to occurrence counts. Counts may
	// legitimately sit at zero since ids are tracked individually.
	// ListOfUnion type only.
	Nodes map[string]int

	// first is the id of the record that caused this type-info to be
	// attributed, cleared when Total returns to zero.
	first string

	// ord is this type-info's insertion ordinal within its descriptor.
	// Type-infos are never removed from a descriptor, so ordinals are stable;
	// the example builder uses them to find the older of two numeric types.
	ord int
}

// FirstSeenIn reports the id of the record credited with introducing this
// type at this position. It exists only to group conflicting array-item
// examples by origin record; it is approximate under churn and is not an
// audit trail.
func (ti *TypeInfo) FirstSeenIn() string {
	return ti.first
}

// typeInfo returns the stats for t, allocating the descriptor and the entry
// as needed. The returned descriptor must be stored back by the caller.
func (d ValueDescriptor) typeInfo(t Tag) (ValueDescriptor, *TypeInfo) {
	if d == nil {
		d = make(ValueDescriptor)
	}
	ti, ok := d[t]
	if !ok {
		ti = &TypeInfo{ord: len(d)}
		d[t] = ti
	}
	return d, ti
}
