package internal

import (
	"iter"
)

// Window returns the half-open index range [first, last) of at most
// 2*radius entries that starts radius entries before center.
// The range is clamped to [0, limit), and slides back from the limit
// so it stays full whenever limit allows.
func Window(center, radius, limit int) (first, last int) {
	if radius < 0 {
		radius = 0
	}

	first = max(center-radius, 0)
	last = first + 2*radius
	if last > limit {
		last = limit
		first = max(last-2*radius, 0)
	}

	return
}

// WindowSeq returns an iterator over the indices of Window(center, radius, limit).
func WindowSeq(center, radius, limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		first, last := Window(center, radius, limit)
		for n := first; n < last; n++ {
			if !yield(n) {
				return // Stop if the consumer stops
			}
		}
	}
}
