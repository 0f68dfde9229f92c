package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name                  string
		center, radius, limit int
		first, last           int
	}){
		{"start", 0, 9, 30000, 0, 18},
		{"near_start", 4, 9, 30000, 0, 18},
		{"middle", 100, 9, 30000, 91, 109},
		{"near_end", 29995, 9, 30000, 29982, 30000},
		{"short", 3, 15, 8, 0, 8},
		{"empty", 0, 15, 0, 0, 0},
		{"zero_radius", 5, 0, 10, 5, 5},
	}

	for _, entry := range table {
		first, last := Window(entry.center, entry.radius, entry.limit)
		assert.Equal(entry.first, first, entry.name)
		assert.Equal(entry.last, last, entry.name)
	}
}

func TestWindowSeq(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{1, 2, 3, 4}, slices.Collect(WindowSeq(3, 2, 10)))
	assert.Equal([]int{0, 1, 2}, slices.Collect(WindowSeq(0, 2, 3)))
	assert.Empty(slices.Collect(WindowSeq(0, 2, 0)))

	var seen []int
	for n := range WindowSeq(10, 5, 100) {
		seen = append(seen, n)
		if n == 6 {
			break
		}
	}
	assert.Equal([]int{5, 6}, seen)
}
