// Package jobdesc retrieves a job posting from a URL and reduces it to plain
// text fit for the AI endpoints' job_description input.
package jobdesc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for job posting fetches.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ProfolioCLI/1.0)"

// Options configures the fetch behavior.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FetchError represents a failure retrieving or parsing a job posting page.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job posting fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("job posting fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// FromURL fetches a job posting page and extracts its main text. When the
// plain fetch yields too little text for a real posting and opts.UseBrowser is
// set, the page is re-rendered in a headless browser before extraction.
func FromURL(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	html, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	text, err := ExtractText(html)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	if opts.UseBrowser && tooShortForPosting(text) {
		rendered, browserErr := renderWithBrowser(ctx, urlStr, opts.Timeout)
		if browserErr != nil {
			return "", &FetchError{URL: urlStr, Message: "browser rendering failed", Cause: browserErr}
		}
		text, err = ExtractText(rendered)
		if err != nil {
			return "", &FetchError{URL: urlStr, Message: "failed to extract rendered text", Cause: err}
		}
	}

	if strings.TrimSpace(text) == "" {
		return "", &FetchError{URL: urlStr, Message: "page contained no readable text"}
	}
	return text, nil
}

func fetchHTML(ctx context.Context, urlStr string, opts *Options) (string, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}
	return string(body), nil
}

// contentSelectors are tried in order; the first match wins, with a fallback
// to the whole body.
var contentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractText parses HTML and returns the main body text with navigation,
// scripts, and other noise removed.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return cleanWhitespace(main.Text()), nil
}

// cleanWhitespace trims every line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
