package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/articletrans/internal/cli"
	"codeberg.org/snonux/articletrans/internal/docxfile"
	"codeberg.org/snonux/articletrans/internal/testutil"
)

func writeInputDocx(t *testing.T, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.docx")
	doc := &docxfile.Document{Paragraphs: paragraphs}
	if err := docxfile.Write(doc, path); err != nil {
		t.Fatalf("Failed to create input document: %v", err)
	}
	return path
}

func docxFlags(inputPath string) *cli.Flags {
	flags := cli.NewFlags()
	flags.InputPath = inputPath
	flags.TargetLang = "pt-br"
	flags.ChunkSize = 100
	return flags
}

func TestDocxProcessor_RoundTrip(t *testing.T) {
	paragraphs := []string{
		"First paragraph.",
		"",
		"Second paragraph with more words.",
	}
	inputPath := writeInputDocx(t, paragraphs)
	flags := docxFlags(inputPath)
	mock := &testutil.MockTranslator{}

	proc := NewDocxProcessor(flags, mock)
	if err := proc.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	outputPath := docxfile.OutputPath(inputPath, "pt-br", "")
	out, err := docxfile.Read(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output document: %v", err)
	}

	if len(out.Paragraphs) != len(paragraphs) {
		t.Fatalf("Output has %d paragraphs, want %d", len(out.Paragraphs), len(paragraphs))
	}
	if out.Paragraphs[0] != "First paragraph." {
		t.Errorf("Paragraph 0 = %q, want echoed translation", out.Paragraphs[0])
	}
	if out.Paragraphs[1] != "" {
		t.Errorf("Empty paragraph not preserved, got %q", out.Paragraphs[1])
	}

	// The input file must be untouched
	in, err := docxfile.Read(inputPath)
	if err != nil {
		t.Fatalf("Failed to re-read input document: %v", err)
	}
	if len(in.Paragraphs) != len(paragraphs) {
		t.Error("Input document was modified")
	}
}

func TestDocxProcessor_SingleChunkBelowThreshold(t *testing.T) {
	inputPath := writeInputDocx(t, []string{"A short paragraph."})
	flags := docxFlags(inputPath)
	mock := &testutil.MockTranslator{}

	proc := NewDocxProcessor(flags, mock)
	if err := proc.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Errorf("Expected exactly 1 translation request, got %d", len(mock.Calls))
	}
}

func TestDocxProcessor_LongParagraphChunked(t *testing.T) {
	long := strings.Repeat("This sentence repeats itself. ", 20)
	inputPath := writeInputDocx(t, []string{long})
	flags := docxFlags(inputPath)
	mock := &testutil.MockTranslator{}

	proc := NewDocxProcessor(flags, mock)
	if err := proc.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(mock.Calls) < 2 {
		t.Errorf("Expected the long paragraph to be split, got %d requests", len(mock.Calls))
	}

	outputPath := docxfile.OutputPath(inputPath, "pt-br", "")
	out, err := docxfile.Read(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output document: %v", err)
	}
	if len(out.Paragraphs) != 1 {
		t.Errorf("Chunked paragraph did not rejoin into 1 paragraph, got %d", len(out.Paragraphs))
	}
}

func TestDocxProcessor_ChunkFailureAborts(t *testing.T) {
	inputPath := writeInputDocx(t, []string{"Good paragraph.", "Bad paragraph."})
	flags := docxFlags(inputPath)
	mock := &testutil.MockTranslator{
		Errors: map[string]error{
			"Bad paragraph.": errors.New("rate limit exceeded"),
		},
	}

	proc := NewDocxProcessor(flags, mock)
	err := proc.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error from failing chunk")
	}
	if !strings.Contains(err.Error(), "paragraph 2") {
		t.Errorf("Error %q does not identify the failed paragraph", err)
	}

	// No partial output file may be left behind
	outputPath := docxfile.OutputPath(inputPath, "pt-br", "")
	if _, statErr := os.Stat(outputPath); statErr == nil {
		t.Error("Partial output file was written despite translation failure")
	}
}

func TestDocxProcessor_MissingInput(t *testing.T) {
	flags := docxFlags(filepath.Join(t.TempDir(), "missing.docx"))
	mock := &testutil.MockTranslator{}

	proc := NewDocxProcessor(flags, mock)
	err := proc.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !strings.Contains(err.Error(), "read input document") {
		t.Errorf("Error %q does not identify the read stage", err)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("Expected no translation requests, got %d", len(mock.Calls))
	}
}

func TestDocxProcessor_ExplicitOutputPath(t *testing.T) {
	inputPath := writeInputDocx(t, []string{"Hello."})
	flags := docxFlags(inputPath)
	flags.OutputPath = filepath.Join(t.TempDir(), "translated.docx")

	proc := NewDocxProcessor(flags, &testutil.MockTranslator{})
	if err := proc.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(flags.OutputPath); err != nil {
		t.Errorf("Output not written to explicit path: %v", err)
	}
}
