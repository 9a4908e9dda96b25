package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIncludes(t *testing.T) {
	assert.Nil(t, NormalizeIncludes(nil))

	// JSON arrays decode as []any.
	got := NormalizeIncludes([]any{"Books", " Notes ", "", 42})
	assert.Equal(t, []string{"Books", "Notes"}, got)

	got = NormalizeIncludes("Books, Notes,,  Certificate ")
	assert.Equal(t, []string{"Books", "Notes", "Certificate"}, got)

	got = NormalizeIncludes([]string{" Recordings "})
	assert.Equal(t, []string{"Recordings"}, got)

	assert.Nil(t, NormalizeIncludes(12.5))
}
