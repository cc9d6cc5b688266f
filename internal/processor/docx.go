package processor

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/snonux/articletrans/internal/chunk"
	"codeberg.org/snonux/articletrans/internal/cli"
	"codeberg.org/snonux/articletrans/internal/docxfile"
	"codeberg.org/snonux/articletrans/internal/translator"
)

// DocxProcessor translates a .docx document paragraph by paragraph
type DocxProcessor struct {
	flags  *cli.Flags
	client translator.Client
}

// NewDocxProcessor creates a new document processor
func NewDocxProcessor(flags *cli.Flags, client translator.Client) *DocxProcessor {
	return &DocxProcessor{
		flags:  flags,
		client: client,
	}
}

// Run reads the input document, translates every paragraph and writes the
// result to a new document. Paragraph order and count are preserved; empty
// paragraphs pass through untranslated. The first failing chunk aborts the
// run, so no incomplete output file is produced.
func (p *DocxProcessor) Run(ctx context.Context) error {
	doc, err := docxfile.Read(p.flags.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input document: %w", err)
	}

	fmt.Printf("Translating %d paragraphs to %s via %s\n",
		len(doc.Paragraphs), p.flags.TargetLang, p.client.Name())

	opts := translator.Options{
		From: p.flags.SourceLang,
		To:   p.flags.TargetLang,
	}

	out := &docxfile.Document{
		Paragraphs: make([]string, len(doc.Paragraphs)),
	}
	for i, text := range doc.Paragraphs {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			// Keep empty lines and spacing paragraphs in place
			continue
		}

		chunks := chunk.Split(trimmed, p.flags.ChunkSize)
		translated := make([]string, len(chunks))
		for j, c := range chunks {
			if p.flags.Verbose {
				fmt.Printf("  paragraph %d/%d: chunk %d/%d (%d chars)\n",
					i+1, len(doc.Paragraphs), j+1, len(chunks), len(c))
			}
			result, err := p.client.Translate(ctx, c, opts)
			if err != nil {
				return fmt.Errorf("failed to translate paragraph %d, chunk %d/%d: %w",
					i+1, j+1, len(chunks), err)
			}
			translated[j] = result
		}
		out.Paragraphs[i] = strings.Join(translated, " ")
	}

	outputPath := docxfile.OutputPath(p.flags.InputPath, p.flags.TargetLang, p.flags.OutputPath)
	if err := docxfile.Write(out, outputPath); err != nil {
		return fmt.Errorf("failed to write translated document: %w", err)
	}

	fmt.Printf("Translated document saved to: %s\n", outputPath)
	return nil
}
