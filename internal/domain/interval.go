package domain

// Interval is a half-open range [Start, End) in minutes since midnight
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals share at least one minute.
// Touching intervals ([10:00,10:30) and [10:30,11:00)) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}

// Contains reports whether other lies entirely within i
func (i Interval) Contains(other Interval) bool {
	return i.Start <= other.Start && other.End <= i.End
}

// Length returns the interval length in minutes
func (i Interval) Length() int {
	return i.End - i.Start
}
