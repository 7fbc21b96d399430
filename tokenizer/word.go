package tokenizer

import (
	"strings"
	"unicode"
)

// WordTokenizer splits text into lowercase alphabetic words.
// Every non-alphabetic rune acts as a separator, so punctuation and digits
// never appear inside a token and no token is ever empty.
type WordTokenizer struct{}

func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize converts text to a sequence of lowercase word tokens.
// Input with no alphabetic runes yields an empty (nil) sequence.
func (t *WordTokenizer) Tokenize(text string) []string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToLower(r))
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Fields(sb.String())
}
