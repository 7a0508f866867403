package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// LastDays returns the range covering the n days up to and including 'to'.
func LastDays(to Date, n int) Range { return Range{From: to.Add(-n), To: to} }

// Contains reports whether the date is included in the range (boundaries included).
func (r Range) Contains(day Date) bool { return !day.Before(r.From) && !day.After(r.To) }
