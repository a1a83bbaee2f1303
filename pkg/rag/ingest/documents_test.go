package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-answer-engine-be/internal/pkg/logger"
)

func TestHTMLToText(t *testing.T) {
	html := `<html>
<head><title>Test Page</title><style>body { color: red }</style></head>
<body>
<script>var x = 1;</script>
<h1>Heading</h1>
<p>First paragraph.</p>
<div>Second <b>bold</b> part.</div>
<noscript>ignored</noscript>
</body>
</html>`

	title, text := HTMLToText(strings.NewReader(html))

	assert.Equal(t, "Test Page", title)
	assert.Contains(t, text, "Heading")
	assert.Contains(t, text, "First paragraph.")
	assert.Contains(t, text, "bold")
	assert.NotContains(t, text, "var x")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "ignored")
}

func TestFromLinksPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("alpha content"))
		case "/b":
			http.Error(w, "nope", http.StatusNotFound)
		case "/c":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("gamma content"))
		}
	}))
	defer srv.Close()

	ing := NewIngestor(500, 100, 4, logger.NewNopLogger())
	sources := ing.FromLinks(context.Background(), []string{
		srv.URL + "/a", srv.URL + "/b", srv.URL + "/c",
	})

	require.Len(t, sources, 2)
	// failing link is dropped, order of the surviving links is preserved
	assert.Equal(t, "alpha content", sources[0].Content)
	assert.Equal(t, "gamma content", sources[1].Content)
}

func TestFromLinksAllFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ing := NewIngestor(500, 100, 2, logger.NewNopLogger())
	sources := ing.FromLinks(context.Background(), []string{srv.URL + "/x", srv.URL + "/y"})

	assert.Empty(t, sources)
}

func TestFromTextChunksLongInput(t *testing.T) {
	ing := NewIngestor(100, 20, 1, logger.NewNopLogger())
	long := strings.Repeat("some words here ", 50)

	sources := ing.FromText(long, "Doc", "https://example.com/doc")

	require.Greater(t, len(sources), 1)
	for _, s := range sources {
		assert.Equal(t, "Doc", s.Title)
		assert.Equal(t, "https://example.com/doc", s.URL)
	}
}
