package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	p := Page{}.Normalize(0)
	assert.Equal(t, Page{Number: 1, Size: DefaultPageSize}, p)

	p = Page{Number: 3, Size: 50}.Normalize(20)
	assert.Equal(t, Page{Number: 3, Size: 50}, p)

	p = Page{Number: -1, Size: 1000}.Normalize(20)
	assert.Equal(t, Page{Number: 1, Size: MaxPageSize}, p)

	p = Page{}.Normalize(35)
	assert.Equal(t, Page{Number: 1, Size: 35}, p)
}

func TestPageLimitOffset(t *testing.T) {
	limit, offset := Page{Number: 1, Size: 20}.LimitOffset()
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = Page{Number: 4, Size: 25}.LimitOffset()
	assert.Equal(t, 25, limit)
	assert.Equal(t, 75, offset)
}
