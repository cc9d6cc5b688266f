package docxfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.docx")

	original := &Document{
		Paragraphs: []string{
			"First paragraph.",
			"",
			"Third paragraph with some more text in it.",
		},
	}

	if err := Write(original, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(got.Paragraphs) != len(original.Paragraphs) {
		t.Fatalf("Expected %d paragraphs, got %d", len(original.Paragraphs), len(got.Paragraphs))
	}

	for i, want := range original.Paragraphs {
		if got.Paragraphs[i] != want {
			t.Errorf("Paragraph %d = %q, want %q", i, got.Paragraphs[i], want)
		}
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read("/nonexistent/path/document.docx")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRead_NotADocx(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "garbage.docx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	if err == nil {
		t.Error("Expected error for a file that is not a .docx archive")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name       string
		inputPath  string
		targetLang string
		explicit   string
		expected   string
	}{
		{
			name:       "derived from input",
			inputPath:  "article.docx",
			targetLang: "pt-br",
			expected:   "article_pt-br.docx",
		},
		{
			name:       "derived with directory",
			inputPath:  "/tmp/docs/article.docx",
			targetLang: "de",
			expected:   "/tmp/docs/article_de.docx",
		},
		{
			name:       "explicit path wins",
			inputPath:  "article.docx",
			targetLang: "pt-br",
			explicit:   "out.docx",
			expected:   "out.docx",
		},
		{
			name:       "input without extension",
			inputPath:  "article",
			targetLang: "fr",
			expected:   "article_fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OutputPath(tt.inputPath, tt.targetLang, tt.explicit)
			if got != tt.expected {
				t.Errorf("OutputPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}
