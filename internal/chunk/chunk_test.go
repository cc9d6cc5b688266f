package chunk

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		limit          int
		expectedChunks int
	}{
		{
			name:           "empty input",
			text:           "",
			limit:          100,
			expectedChunks: 0,
		},
		{
			name:           "text below limit is a single chunk",
			text:           "A short paragraph.",
			limit:          100,
			expectedChunks: 1,
		},
		{
			name:           "text exactly at limit is a single chunk",
			text:           strings.Repeat("a", 100),
			limit:          100,
			expectedChunks: 1,
		},
		{
			name:           "sentences split into multiple chunks",
			text:           "First sentence here. Second sentence here. Third sentence here.",
			limit:          25,
			expectedChunks: 3,
		},
		{
			name:           "two short sentences share a chunk",
			text:           "One. Two. " + strings.Repeat("x", 30) + ".",
			limit:          40,
			expectedChunks: 2,
		},
		{
			name:           "oversized sentence falls back to word boundaries",
			text:           strings.Repeat("word ", 20) + "end",
			limit:          30,
			expectedChunks: 4,
		},
		{
			name:           "unbroken run is hard-split",
			text:           strings.Repeat("x", 95),
			limit:          30,
			expectedChunks: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, tt.limit)

			if len(chunks) != tt.expectedChunks {
				t.Errorf("Split() returned %d chunks, want %d: %q", len(chunks), tt.expectedChunks, chunks)
			}

			// Concatenation must reproduce the input exactly
			if got := strings.Join(chunks, ""); got != tt.text {
				t.Errorf("Split() lost content:\ngot  %q\nwant %q", got, tt.text)
			}

			for i, c := range chunks {
				if c == "" {
					t.Errorf("Split() produced empty chunk at index %d", i)
				}
				if n := utf8.RuneCountInString(c); n > tt.limit {
					t.Errorf("chunk %d has %d runes, limit is %d", i, n, tt.limit)
				}
			}
		})
	}
}

func TestSplit_DefaultLimit(t *testing.T) {
	text := strings.Repeat("a", DefaultRequestLimit+1)
	chunks := Split(text, 0)

	if len(chunks) != 2 {
		t.Errorf("Split() with limit 0 returned %d chunks, want 2", len(chunks))
	}
}

func TestSplit_MultiByteRunes(t *testing.T) {
	// Cyrillic text: rune count, not byte count, must bound the chunks
	text := strings.Repeat("ябълка ", 10)
	chunks := Split(text, 20)

	if got := strings.Join(chunks, ""); got != text {
		t.Errorf("Split() lost content: got %q, want %q", got, text)
	}
	for i, c := range chunks {
		if n := utf8.RuneCountInString(c); n > 20 {
			t.Errorf("chunk %d has %d runes, limit is 20", i, n)
		}
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	text := "first. second. third. fourth. fifth."
	chunks := Split(text, 10)

	joined := strings.Join(chunks, "")
	for _, word := range []string{"first", "second", "third", "fourth", "fifth"} {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q missing after split", word)
		}
	}
	if joined != text {
		t.Errorf("order not preserved: got %q, want %q", joined, text)
	}
}
