package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name           string
		offset, limit  int
		expectedOffset int
		expectedLimit  int
	}{
		{name: "within bounds", offset: 5, limit: 10, expectedOffset: 5, expectedLimit: 10},
		{name: "negative offset", offset: -3, limit: 10, expectedOffset: 0, expectedLimit: 10},
		{name: "zero limit", offset: 0, limit: 0, expectedOffset: 0, expectedLimit: MaxPageLimit},
		{name: "negative limit", offset: 0, limit: -1, expectedOffset: 0, expectedLimit: MaxPageLimit},
		{name: "limit above maximum", offset: 0, limit: MaxPageLimit + 1, expectedOffset: 0, expectedLimit: MaxPageLimit},
		{name: "limit at maximum", offset: 0, limit: MaxPageLimit, expectedOffset: 0, expectedLimit: MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := ClampPage(tt.offset, tt.limit)
			assert.Equal(t, tt.expectedOffset, offset)
			assert.Equal(t, tt.expectedLimit, limit)
		})
	}
}
