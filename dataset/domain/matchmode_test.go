package dataset

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestParseMatchMode(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantErr  bool
		expected MatchMode
	}{
		{
			name:     "empty token is exact equality",
			token:    "",
			expected: MatchMode{Kind: MatchEquals},
		},
		{
			name:     "startswith",
			token:    "startswith",
			expected: MatchMode{Kind: MatchPrefix},
		},
		{
			name:     "endswith",
			token:    "endswith",
			expected: MatchMode{Kind: MatchSuffix},
		},
		{
			name:     "includes",
			token:    "includes",
			expected: MatchMode{Kind: MatchSubstring},
		},
		{
			name:     "gt",
			token:    "gt",
			expected: MatchMode{Kind: MatchOperator, Operator: ">"},
		},
		{
			name:     "gte",
			token:    "gte",
			expected: MatchMode{Kind: MatchOperator, Operator: ">="},
		},
		{
			name:     "lt",
			token:    "lt",
			expected: MatchMode{Kind: MatchOperator, Operator: "<"},
		},
		{
			name:     "lte",
			token:    "lte",
			expected: MatchMode{Kind: MatchOperator, Operator: "<="},
		},
		{
			name:     "ne",
			token:    "ne",
			expected: MatchMode{Kind: MatchOperator, Operator: "!="},
		},
		{
			name:    "unknown token is rejected",
			token:   "between",
			wantErr: true,
		},
		{
			name:    "raw operator symbol is rejected",
			token:   ">=",
			wantErr: true,
		},
		{
			name:    "case matters",
			token:   "StartsWith",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatchMode(tt.token)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMatchMode(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}

			if tt.wantErr {
				assert.Equal(t, ErrUnsupportedMatchMode(tt.token).Error(), err.Error())
				return
			}

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Restaurants", "restaurants"},
		{"  restaurants  ", "restaurants"},
		{"RESTAURANTS", "restaurants"},
		{"restaurants", "restaurants"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeName(tt.in))
	}
}

func TestRecordFields(t *testing.T) {
	record := Record{
		"id":    "doc-1",
		"title": "chez panisse",
	}

	fields := record.Fields()

	assert.Equal(t, "chez panisse", fields["title"])

	if _, ok := fields["id"]; ok {
		t.Error("Fields() must not carry the id")
	}

	// The copy is detached from the record.
	fields["title"] = "mutated"
	assert.Equal(t, "chez panisse", record["title"])
}
