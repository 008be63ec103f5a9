package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateBasics(t *testing.T) {
	lo, hi, page, totalPages := Paginate(25, 2, 10)

	assert.Equal(t, 10, lo)
	assert.Equal(t, 20, hi)
	assert.Equal(t, 2, page)
	assert.Equal(t, 3, totalPages)
}

func TestPaginateLastPartialPage(t *testing.T) {
	lo, hi, page, totalPages := Paginate(25, 3, 10)

	assert.Equal(t, 20, lo)
	assert.Equal(t, 25, hi)
	assert.Equal(t, 3, page)
	assert.Equal(t, 3, totalPages)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	// página 0 vira 1
	lo, hi, page, _ := Paginate(25, 0, 10)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)
	assert.Equal(t, 1, page)

	// página 99 vira a última
	lo, hi, page, _ = Paginate(25, 99, 10)
	assert.Equal(t, 20, lo)
	assert.Equal(t, 25, hi)
	assert.Equal(t, 3, page)
}

func TestPaginateEmptyCollection(t *testing.T) {
	lo, hi, page, totalPages := Paginate(0, 5, 10)

	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
	assert.Equal(t, 1, page)
	assert.Equal(t, 1, totalPages)
}

func TestPaginateZeroSizeFallsBackToDefault(t *testing.T) {
	_, hi, _, totalPages := Paginate(25, 1, 0)

	assert.Equal(t, DefaultPageSize, hi)
	assert.Equal(t, 3, totalPages)
}

func TestPageSlice(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page, clamped, totalPages := PageSlice(items, 3, 10)

	assert.Equal(t, []int{20, 21, 22, 23, 24}, page)
	assert.Equal(t, 3, clamped)
	assert.Equal(t, 3, totalPages)
}
