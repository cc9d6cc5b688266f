// Package chunk splits source text into bounded pieces that fit a single
// translation request. Chunks are produced in order; concatenating them
// reproduces the input exactly.
package chunk

import (
	"strings"
	"unicode/utf8"
)

// DefaultRequestLimit is the default maximum chunk size in runes for the
// Translator Text API. The service caps a request at 50,000 characters;
// 4,500 keeps requests small enough to get useful per-chunk error reports.
const DefaultRequestLimit = 4500

// DefaultPromptLimit is the default maximum chunk size in runes for
// chat-completion prompts. Conservative for a 16k-token context window.
const DefaultPromptLimit = 12000

// Split breaks text into chunks of at most limit runes. It prefers sentence
// boundaries, falls back to word boundaries for a single oversized sentence,
// and hard-splits only an unbroken run longer than the limit. A limit <= 0
// selects DefaultRequestLimit. Empty input yields no chunks.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultRequestLimit
	}
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}
	// add appends a piece that is guaranteed to fit in an empty chunk
	add := func(piece string) {
		n := utf8.RuneCountInString(piece)
		if curLen+n > limit {
			flush()
		}
		cur.WriteString(piece)
		curLen += n
	}

	for _, sentence := range sentences(text) {
		if utf8.RuneCountInString(sentence) > limit {
			for _, piece := range words(sentence, limit) {
				add(piece)
			}
			continue
		}
		add(sentence)
	}
	flush()

	return chunks
}

// sentences cuts text after sentence-ending punctuation and newlines. The
// delimiter stays attached to the preceding segment, so no characters are
// lost at the cut points.
func sentences(text string) []string {
	var out []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		switch r {
		case '.', '!', '?', '\n':
			out = append(out, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// words splits an oversized sentence on space boundaries, keeping each space
// attached to the preceding word. Any single piece still longer than the
// limit is hard-split by runes.
func words(s string, limit int) []string {
	var pieces []string
	runes := []rune(s)
	start := 0
	for i, r := range runes {
		if r == ' ' {
			pieces = append(pieces, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		pieces = append(pieces, string(runes[start:]))
	}

	var out []string
	for _, p := range pieces {
		pr := []rune(p)
		for len(pr) > limit {
			out = append(out, string(pr[:limit]))
			pr = pr[limit:]
		}
		if len(pr) > 0 {
			out = append(out, string(pr))
		}
	}
	return out
}
