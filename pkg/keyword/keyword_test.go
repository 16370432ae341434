package keyword_test

import (
	"sort"
	"testing"

	"github.com/leapstack-labs/sqlparse/pkg/keyword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordsSorted(t *testing.T) {
	// Lookup binary-searches the table, so it must stay sorted.
	require.True(t, sort.StringsAreSorted(keyword.Words[:]))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word string
		want keyword.Keyword
	}{
		{"SELECT", keyword.SELECT},
		{"select", keyword.SELECT},
		{"SeLeCt", keyword.SELECT},
		{"FROM", keyword.FROM},
		{"END-EXEC", keyword.END_EXEC},
		{"foo", keyword.None},
		{"", keyword.None},
		{"SELECTED", keyword.None},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, keyword.Lookup(tt.word))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for i, w := range keyword.Words {
		assert.Equal(t, w, keyword.Keyword(i).String())
		assert.Equal(t, keyword.Keyword(i), keyword.Lookup(w))
	}
	assert.Equal(t, "NONE", keyword.None.String())
}

func TestReservedSets(t *testing.T) {
	assert.True(t, keyword.Contains(keyword.ReservedForTableAlias, keyword.WHERE))
	assert.True(t, keyword.Contains(keyword.ReservedForColumnAlias, keyword.FROM))
	assert.False(t, keyword.Contains(keyword.ReservedForColumnAlias, keyword.ON))
	assert.False(t, keyword.Contains(keyword.ReservedForTableAlias, keyword.ABS))
}
