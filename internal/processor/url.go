package processor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/articletrans/internal/chunk"
	"codeberg.org/snonux/articletrans/internal/cli"
	"codeberg.org/snonux/articletrans/internal/webpage"
)

// TextTranslator is the narrow slice of the LLM client used by the URL
// pipeline, so the network implementation can be substituted in tests.
type TextTranslator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// URLProcessor translates the readable text of a web page
type URLProcessor struct {
	flags      *cli.Flags
	translator TextTranslator
}

// NewURLProcessor creates a new URL processor
func NewURLProcessor(flags *cli.Flags, translator TextTranslator) *URLProcessor {
	return &URLProcessor{
		flags:      flags,
		translator: translator,
	}
}

// Run fetches the page, extracts its text, translates it chunk by chunk and
// writes the result to a file or stdout. Each stage failure is reported
// with the stage it occurred in; a translation failure aborts the run.
func (p *URLProcessor) Run(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Fetching %s\n", p.flags.URL)
	html, err := webpage.Fetch(ctx, p.flags.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", p.flags.URL, err)
	}

	text, err := webpage.ExtractText(html)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	if text == "" {
		return fmt.Errorf("no text content extracted from %s", p.flags.URL)
	}

	chunks := chunk.Split(text, p.flags.ChunkSize)
	fmt.Fprintf(os.Stderr, "Translating %d characters to %s (%d chunks)\n",
		len(text), p.flags.TargetLang, len(chunks))

	translated := make([]string, len(chunks))
	for i, c := range chunks {
		if p.flags.Verbose {
			fmt.Fprintf(os.Stderr, "  chunk %d/%d (%d chars)\n", i+1, len(chunks), len(c))
		}
		result, err := p.translator.Translate(ctx, c, p.flags.TargetLang)
		if err != nil {
			return fmt.Errorf("failed to translate chunk %d/%d: %w", i+1, len(chunks), err)
		}
		translated[i] = result
	}
	output := strings.Join(translated, "\n\n")

	if p.flags.ToStdout {
		fmt.Println(output)
		return nil
	}

	outputPath := p.flags.OutputPath
	if outputPath == "" {
		outputPath = webpage.FilenameForURL(p.flags.URL, p.flags.TargetLang)
	}
	if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write translation: %w", err)
	}

	fmt.Printf("Translation saved to: %s\n", outputPath)
	return nil
}
