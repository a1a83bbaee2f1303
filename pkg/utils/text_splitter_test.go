package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	t.Run("short text returns single chunk", func(t *testing.T) {
		chunks := SplitText("hello world", 500, 100)
		if len(chunks) != 1 || chunks[0] != "hello world" {
			t.Errorf("got %v, want single chunk", chunks)
		}
	})

	t.Run("long text is chunked with overlap", func(t *testing.T) {
		text := strings.Repeat("alpha beta gamma delta ", 100) // ~2300 chars
		chunks := SplitText(text, 500, 100)

		if len(chunks) < 4 {
			t.Fatalf("expected several chunks, got %d", len(chunks))
		}
		for i, c := range chunks {
			if len(c) > 500 {
				t.Errorf("chunk %d exceeds chunk size: %d", i, len(c))
			}
		}
	})

	t.Run("chunks cover the whole text", func(t *testing.T) {
		text := strings.Repeat("0123456789 ", 60)
		chunks := SplitText(text, 100, 20)

		// Every position of the source must appear in at least one chunk.
		joined := strings.Join(chunks, " ")
		for _, word := range strings.Fields(text) {
			if !strings.Contains(joined, word) {
				t.Fatalf("word %q lost during splitting", word)
			}
		}
	})

	t.Run("overlap larger than chunk size does not loop forever", func(t *testing.T) {
		text := strings.Repeat("x", 50)
		chunks := SplitText(text, 10, 20)
		if len(chunks) == 0 {
			t.Fatal("expected chunks")
		}
	})
}
