// Package webpage fetches a web page and extracts its human-readable text.
// Only static HTML is handled; pages that render their content with
// JavaScript come back empty.
package webpage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"codeberg.org/snonux/articletrans/internal"
)

const (
	maxRedirects    = 10
	fetchTimeout    = 30 * time.Second
	maxContentBytes = 10 * 1024 * 1024
)

// Fetch retrieves the raw body of a page over HTTP
func Fetch(ctx context.Context, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid URL: %q", pageURL)
	}

	client := &http.Client{
		Timeout: fetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("stopped after too many redirects")
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch page: status %s", resp.Status)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}

	return string(content), nil
}

// ExtractText parses HTML and returns the visible text, one trimmed
// fragment per line. Script, style and noscript contents are discarded.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	raw := doc.Text()

	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		for _, phrase := range strings.Split(line, "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				parts = append(parts, phrase)
			}
		}
	}

	return strings.Join(parts, "\n"), nil
}

// FilenameForURL derives an output filename from a page URL and target
// language, e.g. example.com_blog_post_pt-br.md
func FilenameForURL(pageURL, lang string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return internal.SanitizeFilename(pageURL) + "_" + lang + ".md"
	}

	host := strings.ReplaceAll(u.Host, ":", "_")
	path := strings.Trim(u.Path, "/")
	if path == "" {
		path = "index"
	}
	path = strings.ReplaceAll(path, "/", "_")

	return internal.SanitizeFilename(host+"_"+path) + "_" + lang + ".md"
}
