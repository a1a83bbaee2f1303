package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBuildsQueryAndParsesResults(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"format":  r.URL.Query().Get("format"),
			"q":       r.URL.Query().Get("q"),
			"engines": r.URL.Query().Get("engines"),
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"title": "Paper", "url": "https://arxiv.org/abs/1", "content": "abstract"},
			},
			"suggestions": []string{"related query"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	results, suggestions, err := c.Search(context.Background(), "quantum computing", &Options{
		Engines: []string{"arxiv", "google scholar"},
	})

	require.NoError(t, err)
	assert.Equal(t, "json", gotQuery["format"])
	assert.Equal(t, "quantum computing", gotQuery["q"])
	assert.Equal(t, "arxiv,google scholar", gotQuery["engines"])
	require.Len(t, results, 1)
	assert.Equal(t, "Paper", results[0].Title)
	assert.Equal(t, []string{"related query"}, suggestions)
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, _, err := c.Search(context.Background(), "anything", nil)

	assert.Error(t, err)
}
