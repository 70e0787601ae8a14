package jobdesc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main><h1>Senior Go Engineer</h1><p>Build backend services.</p></main></body></html>`))
	}))
	defer server.Close()

	text, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build backend services.")
}

func TestFromURL_InvalidURL(t *testing.T) {
	_, err := FromURL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestFromURL_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>boot()</script></body></html>`))
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readable text")
}

func TestFromURL_SendsUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`<html><body><p>ok</p></body></html>`))
	}))
	defer server.Close()

	_, err := FromURL(context.Background(), server.URL, nil)
	require.NoError(t, err)
}

func TestExtractText_PrefersJobSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="sidebar">Related jobs</div>
			<div class="job-description">
				<h2>Requirements</h2>
				<p>5 years of Go experience</p>
			</div>
		</body>
	</html>`

	text, err := ExtractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Requirements")
	assert.Contains(t, text, "5 years of Go experience")
	assert.NotContains(t, text, "Related jobs")
}

func TestExtractText_StripsChrome(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Home | Jobs</nav>
			<main><p>The actual posting.</p></main>
			<footer>© Example</footer>
			<script>track()</script>
		</body>
	</html>`

	text, err := ExtractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "The actual posting.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "track()")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	text, err := ExtractText(`<html><body><div>Plain content.</div></body></html>`)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain content.")
}

func TestCleanWhitespace(t *testing.T) {
	got := cleanWhitespace("  first  \n\n\t\n   second\n")
	assert.Equal(t, "first\nsecond", got)
}

func TestTooShortForPosting(t *testing.T) {
	assert.True(t, tooShortForPosting("apply now"))
	assert.False(t, tooShortForPosting(strings.Repeat("requirements and responsibilities ", 20)))
}
