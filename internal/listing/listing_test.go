package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	// 12 active countries at page size 10 span two pages
	assert.Equal(t, 2, TotalPages(12, 10))
}

func TestClampSkipInRange(t *testing.T) {
	assert.Equal(t, 0, ClampSkip(1, 10, 12))
	assert.Equal(t, 10, ClampSkip(2, 10, 12))
}

func TestClampSkipOutOfRange(t *testing.T) {
	// An overflowing page silently falls back to the last non-empty window.
	assert.Equal(t, 2, ClampSkip(5, 10, 12))
	assert.Equal(t, 0, ClampSkip(5, 10, 7))
	assert.Equal(t, 0, ClampSkip(3, 10, 0))
}

func TestClampSkipNeverNegativeOrPastEnd(t *testing.T) {
	for page := 1; page <= 20; page++ {
		for _, size := range PageSizes {
			for total := 0; total <= 120; total += 7 {
				skip := ClampSkip(page, size, total)
				assert.GreaterOrEqual(t, skip, 0, "page=%d size=%d total=%d", page, size, total)
				max := total - size
				if max < 0 {
					max = 0
				}
				assert.LessOrEqual(t, skip, max, "page=%d size=%d total=%d", page, size, total)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	p := Params{SearchText: "  Ind ", Page: 0, PageSize: 37}.Normalize()
	assert.Equal(t, "Ind", p.SearchText)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)

	p = Params{Page: 3, PageSize: 25}.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.PageSize)
}
