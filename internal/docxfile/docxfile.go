// Package docxfile reads and writes paragraph-oriented .docx documents.
// A document is modeled as an ordered list of paragraph texts; formatting,
// tables and embedded media are not carried over.
package docxfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
)

// Document is an ordered sequence of paragraph texts. Empty strings
// represent empty paragraphs and keep their position.
type Document struct {
	Paragraphs []string
}

// Read extracts the paragraph texts from a .docx file. The input file is
// never modified.
func Read(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}

	parsed, err := docx.Parse(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s as .docx: %w", path, err)
	}

	doc := &Document{}
	for _, it := range parsed.Document.Body.Items {
		p, ok := it.(*docx.Paragraph)
		if !ok {
			continue // tables and section properties are skipped
		}
		doc.Paragraphs = append(doc.Paragraphs, paragraphText(p))
	}
	return doc, nil
}

// paragraphText concatenates the text of all runs in a paragraph
func paragraphText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}
	return sb.String()
}

// Write generates a new .docx file with one paragraph per document entry.
func Write(doc *Document, path string) error {
	w := docx.New().WithDefaultTheme()
	for _, text := range doc.Paragraphs {
		para := w.AddParagraph()
		if text != "" {
			para.AddText(text)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := w.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	return f.Close()
}

// OutputPath returns the explicit output path if set, otherwise a path
// derived from the input path and target language, e.g. article_pt-br.docx.
func OutputPath(inputPath, targetLang, explicit string) string {
	if explicit != "" {
		return explicit
	}
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return fmt.Sprintf("%s_%s%s", base, targetLang, ext)
}
