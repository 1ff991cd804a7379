package pagination

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Normalizes(t *testing.T) {
	assert.Equal(t, Pageable{Page: 1, Size: 20}, Of(0, 0))
	assert.Equal(t, Pageable{Page: 3, Size: 100}, Of(3, 500))
	assert.Equal(t, Pageable{Page: 2, Size: 5}, Of(2, 5))
}

func TestPageable_Offset(t *testing.T) {
	assert.Equal(t, 0, Of(1, 10).Offset())
	assert.Equal(t, 20, Of(3, 10).Offset())
	assert.Equal(t, 10, Of(3, 10).Limit())
}

func TestNewPage_TotalPages(t *testing.T) {
	p := NewPage([]int{1, 2}, 21, Of(1, 10))

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(21), p.Total)
	assert.False(t, p.Empty())
}

func TestNewPage_NilContentSerializesAsEmptyArray(t *testing.T) {
	p := NewPage[int](nil, 0, Of(1, 10))

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"content":[]`)
	assert.True(t, p.Empty())
}

func TestMap(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 3, Of(1, 3))
	out := Map(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2", "3"}, out.Content)
	assert.Equal(t, p.TotalPages, out.TotalPages)
}
