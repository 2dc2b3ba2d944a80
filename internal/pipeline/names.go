package pipeline

import "strings"

// CollapseWhitespace trims the string and squeezes internal whitespace
// runs down to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitName derives first and last name from a combined name field.
// The split happens on the last whitespace boundary: everything before
// it is the first name, the final token is the last name, so
// "Anna Maria Schmidt" becomes ("Anna Maria", "Schmidt").
//
// Particle surnames are not specially handled: "Jan van der Berg"
// yields last name "Berg". The source data carries no marker that
// would let us tell a particle from a middle name, so the simple rule
// is kept as a documented limitation.
//
// A single token is treated as the last name, keeping the invariant
// that every record has a non-empty last name.
func SplitName(full string) (first, last string) {
	full = CollapseWhitespace(full)
	if full == "" {
		return "", ""
	}
	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return "", full
	}
	return full[:idx], full[idx+1:]
}
