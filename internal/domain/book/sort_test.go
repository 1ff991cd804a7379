package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want Order
	}{
		{"price", Order{Key: SortPrice}},
		{"price,asc", Order{Key: SortPrice}},
		{"likes,desc", Order{Key: SortLikes, Desc: true}},
		{" viewCount , DESC ", Order{Key: SortViewCount, Desc: true}},
		{"publishedDate,desc", Order{Key: SortPublishedDate, Desc: true}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseOrder(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrder_Rejects(t *testing.T) {
	for _, raw := range []string{"title", "Price", "price,sideways", "id;DROP TABLE books", ""} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseOrder(raw)
			assert.ErrorIs(t, err, ErrInvalidSortKey)
		})
	}
}

func TestParseOrders(t *testing.T) {
	orders, err := ParseOrders([]string{"likes,desc", "", "price"})
	require.NoError(t, err)
	assert.Equal(t, []Order{{Key: SortLikes, Desc: true}, {Key: SortPrice}}, orders)

	_, err = ParseOrders([]string{"price", "author"})
	assert.ErrorIs(t, err, ErrInvalidSortKey)
}

func TestSortKey_String(t *testing.T) {
	for name, key := range sortKeyNames {
		assert.Equal(t, name, key.String())
		assert.True(t, key.Valid())
	}
	assert.False(t, SortKey(0).Valid())
	assert.Equal(t, "unknown", SortKey(99).String())
}

func TestListQuery_Validate(t *testing.T) {
	assert.NoError(t, ListQuery{Orders: []Order{{Key: SortPrice}}}.Validate())
	assert.ErrorIs(t, ListQuery{Orders: []Order{{Key: SortKey(42)}}}.Validate(), ErrInvalidSortKey)
}
