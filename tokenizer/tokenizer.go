package tokenizer

// Tokenizer is the common interface for all tokenizers.
// A tokenizer turns a raw string into an ordered sequence of word tokens;
// it never fails and may return an empty sequence.
type Tokenizer interface {
	Tokenize(text string) []string
}
