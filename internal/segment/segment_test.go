package segment

import (
	"reflect"
	"testing"
)

func TestSentences_Basic(t *testing.T) {
	got := Sentences("First sentence. Second sentence! Third sentence?")
	want := []string{"First sentence", "Second sentence", "Third sentence"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentences_PunctuationRuns(t *testing.T) {
	got := Sentences("Really?! Yes... absolutely.")
	want := []string{"Really", "Yes", "absolutely"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentences_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "...", "!?."} {
		got := Sentences(input)
		if len(got) != 0 {
			t.Errorf("Sentences(%q) = %v, want empty", input, got)
		}
	}
}

func TestSentences_OrderPreserved(t *testing.T) {
	got := Sentences("a. b. c. d.")
	want := []string{"a", "b", "c", "d"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences() = %v, want %v", got, want)
	}
}

func TestSentences_NoTerminator(t *testing.T) {
	got := Sentences("no terminal punctuation here")
	if len(got) != 1 || got[0] != "no terminal punctuation here" {
		t.Errorf("Sentences() = %v, want single trailing segment", got)
	}
}
