package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	tok := NewWordTokenizer()

	got := tok.Tokenize("The Quick, Brown FOX!")
	want := []string{"the", "quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeNonAlphabeticSeparators(t *testing.T) {
	tok := NewWordTokenizer()

	got := tok.Tokenize("word2vec isn't 100% alpha-numeric")
	want := []string{"word", "vec", "isn", "t", "alpha", "numeric"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeNoAlphabeticInput(t *testing.T) {
	tok := NewWordTokenizer()

	if got := tok.Tokenize("123 ... 456 !!!"); len(got) != 0 {
		t.Errorf("Tokenize() = %v, want empty", got)
	}
	if got := tok.Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenizeNeverEmptyTokens(t *testing.T) {
	tok := NewWordTokenizer()

	for _, input := range []string{"  a  ", "a..b", "-x-", "\t\nfoo\t\nbar"} {
		for _, word := range tok.Tokenize(input) {
			if word == "" {
				t.Errorf("Tokenize(%q) produced an empty token", input)
			}
		}
	}
}
