// Package testutil provides shared test doubles for the translation
// pipelines.
package testutil

import (
	"context"

	"codeberg.org/snonux/articletrans/internal/translator"
)

// MockTranslator mocks the chunk translation client
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
	Prefix       string
}

// Translate returns a canned translation, an echo of the input, or a
// configured error.
func (m *MockTranslator) Translate(ctx context.Context, text string, opts translator.Options) (string, error) {
	m.Calls = append(m.Calls, text)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if result, ok := m.Translations[text]; ok {
		return result, nil
	}
	return m.Prefix + text, nil
}

// Name returns the mock name
func (m *MockTranslator) Name() string {
	return "mock"
}

// MockTextTranslator mocks the chat-completion translator used by the URL
// pipeline.
type MockTextTranslator struct {
	Translations map[string]string
	Err          error
	Calls        []string
	Langs        []string
	Prefix       string
}

// Translate returns a canned translation, an echo of the input, or the
// configured error.
func (m *MockTextTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	m.Calls = append(m.Calls, text)
	m.Langs = append(m.Langs, targetLang)

	if m.Err != nil {
		return "", m.Err
	}
	if result, ok := m.Translations[text]; ok {
		return result, nil
	}
	return m.Prefix + text, nil
}
