package wordlist

import "testing"

func TestASCIILetters(t *testing.T) {
	if !ASCIILetters("hello") {
		t.Fatalf("expected hello to pass filter")
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "co-op", "Hello"} {
		if ASCIILetters(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestNormalizeLowercases(t *testing.T) {
	got := Normalize([]string{" Quick ", "BROWN", "co-op"}, ASCIILetters)
	if len(got) != 2 || got[0] != "quick" || got[1] != "brown" {
		t.Fatalf("unexpected normalized words: %v", got)
	}
}
