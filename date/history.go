package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a
// specific date. Dates are unique and the series is always sorted ascending.
type History[T any] struct {
	days   []Date
	values []T
}

// Len returns the number of points in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

// Oldest returns the first date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Oldest() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// search locates the insertion index for day, reporting whether it is present.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Append adds a point to the history, keeping it sorted.
//
// An existing value at that date is overwritten: the last data wins.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return *new(T), false
}

// ValueAsOf returns the value on a given day, or the most recent value before
// it. It returns the zero value and false when no point exists on or before day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		return *new(T), false
	}
	return h.values[i-1], true
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Between returns a new history restricted to the points within r.
func (h *History[T]) Between(r Range) History[T] {
	var sub History[T]
	from, _ := h.search(r.From)
	for i := from; i < len(h.days); i++ {
		if h.days[i].After(r.To) {
			break
		}
		sub.days = append(sub.days, h.days[i])
		sub.values = append(sub.values, h.values[i])
	}
	return sub
}
