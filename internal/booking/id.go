package booking

import "strconv"

// ParseID normalizes a caller-supplied id (numeric string) to the integer the
// store keys on. Anything non-numeric is reported as ok=false, which callers
// treat as "not found" rather than an error.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}
