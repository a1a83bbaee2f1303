package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-answer-engine-be/internal/pkg/logger"
	"ai-answer-engine-be/pkg/rag"
	"ai-answer-engine-be/pkg/utils"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const maxBodyBytes = 10 * 1024 * 1024 // 10MB per fetched document

// Ingestor downloads a list of links, extracts plain text and splits it into
// overlapping chunks, each chunk becoming one Source. A failing link is
// logged and dropped; it never fails the batch.
type Ingestor struct {
	client      *http.Client
	chunkSize   int
	overlap     int
	concurrency int
	logger      logger.ILogger
}

func NewIngestor(chunkSize, overlap, concurrency int, log logger.ILogger) *Ingestor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Ingestor{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		chunkSize:   chunkSize,
		overlap:     overlap,
		concurrency: concurrency,
		logger:      log,
	}
}

// FromLinks fetches every link concurrently (bounded) and joins all results.
// The returned sources preserve link order: all chunks of links[0] come
// before chunks of links[1], and so on.
func (ing *Ingestor) FromLinks(ctx context.Context, links []string) []rag.Source {
	perLink := make([][]rag.Source, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ing.concurrency)

	for i, link := range links {
		g.Go(func() error {
			sources, err := ing.fetchLink(gctx, link)
			if err != nil {
				ing.logger.Warn("ingest", "failed to process link", map[string]interface{}{
					"link":  link,
					"error": err.Error(),
				})
				return nil // partial-success policy: drop, never abort
			}
			perLink[i] = sources
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var out []rag.Source
	for _, sources := range perLink {
		out = append(out, sources...)
	}
	return out
}

// FromText chunks pre-extracted text (uploaded files) into sources.
func (ing *Ingestor) FromText(text, title, url string) []rag.Source {
	chunks := utils.SplitText(text, ing.chunkSize, ing.overlap)
	sources := make([]rag.Source, 0, len(chunks))
	for _, chunk := range chunks {
		sources = append(sources, rag.Source{
			Title:   title,
			URL:     url,
			Content: chunk,
			Metadata: map[string]any{
				"url":   url,
				"title": title,
			},
		})
	}
	return sources
}

func (ing *Ingestor) fetchLink(ctx context.Context, link string) ([]rag.Source, error) {
	link = normalizeLink(link)

	req, err := http.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html, application/pdf, text/plain;q=0.9, */*;q=0.8")

	resp, err := ing.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	var title, text string
	switch {
	case strings.Contains(contentType, "application/pdf"):
		text, err = ExtractPDFText(body)
		if err != nil {
			return nil, fmt.Errorf("extract pdf: %w", err)
		}
		title = link
	case strings.Contains(contentType, "text/plain"):
		text = string(body)
		title = link
	default:
		title, text = HTMLToText(bytes.NewReader(body))
		if title == "" {
			title = link
		}
	}

	text = collapseWhitespace(text)
	if text == "" {
		return nil, fmt.Errorf("no extractable text (content-type %q)", contentType)
	}

	return ing.FromText(text, title, link), nil
}

// normalizeLink defaults to https when the scheme is missing.
func normalizeLink(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}

// ExtractPDFText pulls plain text from every page of an in-memory PDF.
// A single unreadable page is skipped, matching the per-item recovery policy.
func ExtractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// HTMLToText walks an HTML document and returns its title plus visible text.
// Script, style and image content is skipped and anchor hrefs are ignored,
// keeping only what a reader would see.
func HTMLToText(r io.Reader) (title, text string) {
	tokenizer := html.NewTokenizer(r)

	var b strings.Builder
	var skipDepth int
	var inTitle bool

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return title, b.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style", "noscript", "iframe", "svg":
				skipDepth++
			case "title":
				inTitle = true
			case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "script", "style", "noscript", "iframe", "svg":
				if skipDepth > 0 {
					skipDepth--
				}
			case "title":
				inTitle = false
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			content := string(tokenizer.Text())
			if inTitle {
				if title == "" {
					title = strings.TrimSpace(content)
				}
				continue
			}
			b.WriteString(content)
		}
	}
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
