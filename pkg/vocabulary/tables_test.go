package vocabulary_test

import (
	"testing"

	"github.com/bryanCE/dnsgen/pkg/vocabulary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTable_ReturnsCopy(t *testing.T) {
	words := vocabulary.GetWords()
	require.NotEmpty(t, words)

	words[0] = "mutated"
	assert.NotEqual(t, "mutated", vocabulary.GetWords()[0], "callers must not alias the shared table")
}

func TestGetTable_Unknown(t *testing.T) {
	assert.Nil(t, vocabulary.GetTable("surnames"))
}

func TestTablesAreLowercaseAndUnique(t *testing.T) {
	for name, tokens := range vocabulary.CommonTables {
		seen := make(map[string]bool)
		for _, tok := range tokens {
			assert.Regexp(t, `^[a-z]+$`, tok, "table %s", name)
			assert.False(t, seen[tok], "duplicate token %q in table %s", tok, name)
			seen[tok] = true
		}
	}
}

func TestNameSpaceSize(t *testing.T) {
	assert.Equal(t, 3, vocabulary.NameSpaceSize([]string{"b"}, []string{"a"}))
	assert.Equal(t, 25+50+2500, vocabulary.NameSpaceSize(vocabulary.GetWords(), vocabulary.GetPersonalNames()))
}
