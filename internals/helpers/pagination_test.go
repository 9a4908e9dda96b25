package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagingOffset(t *testing.T) {
	assert.Equal(t, 0, Paging{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, Paging{Page: 3, Limit: 20}.Offset())
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, Paging{Page: 2, Limit: 10})
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 5, p.TotalPages)
	assert.EqualValues(t, 45, p.TotalRecords)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationBounds(t *testing.T) {
	first := BuildPagination(30, Paging{Page: 1, Limit: 10})
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)

	last := BuildPagination(30, Paging{Page: 3, Limit: 10})
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := BuildPagination(0, Paging{Page: 1, Limit: 10})
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
