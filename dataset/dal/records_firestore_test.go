package dal

import (
	"testing"

	"github.com/zeebo/assert"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

func TestMatchesValue(t *testing.T) {
	tests := []struct {
		name       string
		fieldValue interface{}
		value      string
		kind       dataset.MatchKind
		expected   bool
	}{
		{
			name:       "suffix match",
			fieldValue: "chez panisse",
			value:      "panisse",
			kind:       dataset.MatchSuffix,
			expected:   true,
		},
		{
			name:       "suffix mismatch",
			fieldValue: "chez panisse",
			value:      "chez",
			kind:       dataset.MatchSuffix,
		},
		{
			name:       "substring match",
			fieldValue: "chez panisse",
			value:      "z pan",
			kind:       dataset.MatchSubstring,
			expected:   true,
		},
		{
			name:       "substring mismatch",
			fieldValue: "chez panisse",
			value:      "noma",
			kind:       dataset.MatchSubstring,
		},
		{
			name:       "non-string field never matches",
			fieldValue: 42,
			value:      "42",
			kind:       dataset.MatchSubstring,
		},
		{
			name:       "nil field never matches",
			fieldValue: nil,
			value:      "",
			kind:       dataset.MatchSuffix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchesValue(tt.fieldValue, tt.value, tt.kind))
		})
	}
}
