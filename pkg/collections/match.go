package collections

// containsSequence tries every start index, so a partial match
// never hides a later full one.
func (c *Collections) containsSequence(actual, sequence []any) bool {
	for start := 0; start+len(sequence) <= len(actual); start++ {
		if c.matchesAt(actual, sequence, start) {
			return true
		}
	}
	return false
}

func (c *Collections) matchesAt(actual, sequence []any, start int) bool {
	for i, v := range sequence {
		if !c.comparator.AreEqual(actual[start+i], v) {
			return false
		}
	}
	return true
}

func (c *Collections) indexOf(values []any, v any) int {
	for i, candidate := range values {
		if c.comparator.AreEqual(candidate, v) {
			return i
		}
	}
	return -1
}

// distinctNotIn returns the distinct elements of from that do not
// occur in in, in first-seen order.
func (c *Collections) distinctNotIn(from, in []any) []any {
	var seen, missing []any
	for _, v := range from {
		if c.indexOf(seen, v) >= 0 {
			continue
		}
		seen = append(seen, v)
		if c.indexOf(in, v) < 0 {
			missing = append(missing, v)
		}
	}
	return missing
}

// duplicatesOf returns each element that occurs more than once, in
// the order of its second occurrence.
func (c *Collections) duplicatesOf(values []any) []any {
	var seen, duplicates []any
	for _, v := range values {
		if c.indexOf(seen, v) < 0 {
			seen = append(seen, v)
			continue
		}
		if c.indexOf(duplicates, v) < 0 {
			duplicates = append(duplicates, v)
		}
	}
	return duplicates
}
