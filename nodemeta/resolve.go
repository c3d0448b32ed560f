package nodemeta

// resolveWinnerType picks the single semantic type representing a field, or
// flags a conflict. Two mixes are benign: int/float widens to float, and
// date/string coerces to date when every string observation was empty, string
// otherwise. Any other combination of two or more observed types is a genuine
// conflict and yields no representative type.
func resolveWinnerType(desc ValueDescriptor) (Tag, bool) {
	var candidates []Tag
	for _, t := range tagOrder {
		if ti, ok := desc[t]; ok && ti.Total > 0 {
			candidates = append(candidates, t)
		}
	}

	switch len(candidates) {
	case 0:
		return TagNull, false
	case 1:
		return candidates[0], false
	case 2:
		if candidates[0] == TagInt && candidates[1] == TagFloat {
			return TagFloat, false
		}
		if candidates[0] == TagDate && candidates[1] == TagString {
			s := desc[TagString]
			if s.Empty == s.Total {
				return TagDate, false
			}
			return TagString, false
		}
	}

	return TagNull, true
}
