package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextWordSplitsOnDelimiter(t *testing.T) {
	word, rest, pos := NextWord("DUP SWAP DROP", ' ')
	require.Equal(t, "DUP", word)
	require.Equal(t, "SWAP DROP", rest)
	require.Equal(t, 3, pos)
}

func TestNextWordNoDelimiter(t *testing.T) {
	word, rest, pos := NextWord("DUP", ' ')
	require.Equal(t, "DUP", word)
	require.Equal(t, "", rest)
	require.Equal(t, NotFoundPos, pos)
}

func TestNextWordEmptyLeadingWord(t *testing.T) {
	word, rest, _ := NextWord(" DUP", ' ')
	require.Equal(t, "", word)
	require.Equal(t, "DUP", rest)
}
