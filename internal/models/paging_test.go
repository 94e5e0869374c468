package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PageQuery
		expected PageQuery
	}{
		{name: "zero values get defaults", in: PageQuery{}, expected: PageQuery{Page: 1, PageSize: DefaultPageSize}},
		{name: "negative page clamps to one", in: PageQuery{Page: -3, PageSize: 10}, expected: PageQuery{Page: 1, PageSize: 10}},
		{name: "negative page size clamps to one", in: PageQuery{Page: 2, PageSize: -5}, expected: PageQuery{Page: 2, PageSize: 1}},
		{name: "oversized page size clamps to max", in: PageQuery{Page: 2, PageSize: 5000}, expected: PageQuery{Page: 2, PageSize: MaxPageSize}},
		{name: "valid values pass through", in: PageQuery{Page: 3, PageSize: 50}, expected: PageQuery{Page: 3, PageSize: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PageQuery{Page: 3, PageSize: 20}.Offset())
}
