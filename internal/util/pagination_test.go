package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page", page: 1, size: 10, offset: 0, limit: 10},
		{name: "third page", page: 3, size: 20, offset: 40, limit: 20},
		{name: "zero page clamps to first", page: 0, size: 10, offset: 0, limit: 10},
		{name: "negative page clamps to first", page: -5, size: 10, offset: 0, limit: 10},
		{name: "zero size falls back to default", page: 2, size: 0, offset: DefaultPageSize, limit: DefaultPageSize},
		{name: "oversized size falls back to default", page: 1, size: 500, offset: 0, limit: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("7", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 1, ParseIntDefault("seven", 1))
	assert.Equal(t, -3, ParseIntDefault("-3", 1))
}
