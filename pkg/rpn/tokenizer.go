package rpn

import "strings"

// NotFoundPos is the sentinel position NextWord returns when delim does not
// occur in buffer — the entire buffer is the word and nothing remains.
const NotFoundPos = -1

// NextWord extracts the first delim-delimited word from buffer, grounded on
// original_source's nextWord (rpn-controller.cpp): it locates the first
// occurrence of delim, splits there, and returns the position it was found
// at (or NotFoundPos if delim never occurs, in which case word is the whole
// buffer and remaining is empty).
//
// The Tokenizer is stateless and re-entrant. Callers pass ' ' to split plain
// words, ')' to consume a comment body, and '"' to consume a string-literal
// body.
func NextWord(buffer string, delim byte) (word, remaining string, pos int) {
	idx := strings.IndexByte(buffer, delim)
	if idx < 0 {
		return buffer, "", NotFoundPos
	}
	return buffer[:idx], buffer[idx+1:], idx
}
