package planets

import "strconv"

// Value is an optional scalar carried by a provider record: either a
// number, a text string, or absent. The zero Value is absent. Absence is
// explicit so that "provider did not report this" never collides with a
// legitimate zero measurement.
type Value struct {
	num *float64
	str *string
}

// Number builds a present numeric value.
func Number(f float64) Value {
	return Value{num: &f}
}

// Text builds a present text value.
func Text(s string) Value {
	return Value{str: &s}
}

// Float returns the numeric value and whether one is present.
func (v Value) Float() (float64, bool) {
	if v.num == nil {
		return 0, false
	}
	return *v.num, true
}

// Str returns the text value and whether one is present.
func (v Value) Str() (string, bool) {
	if v.str == nil {
		return "", false
	}
	return *v.str, true
}

// IsPresent reports whether the value holds anything at all.
func (v Value) IsPresent() bool {
	return v.num != nil || v.str != nil
}

// String renders the value for logs and provenance reasons.
func (v Value) String() string {
	switch {
	case v.num != nil:
		return strconv.FormatFloat(*v.num, 'g', -1, 64)
	case v.str != nil:
		return *v.str
	default:
		return "<absent>"
	}
}
