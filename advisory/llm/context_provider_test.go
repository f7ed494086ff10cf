package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bububa/adventure-agents/tools/searxng"
	"github.com/bububa/adventure-agents/tools/venuepage"
)

func TestWebSearchContext(t *testing.T) {
	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
  "query": "things to do in Toronto",
  "number_of_results": 1,
  "results": [
    {"url": "https://example.com/cn-tower", "title": "CN Tower", "content": "Iconic Toronto landmark with observation decks."}
  ]
}`))
	}))
	defer searchSrv.Close()

	cfg := &Config{
		searchTool: searxng.New(
			searxng.WithBaseURL(searchSrv.URL),
			searxng.WithHttpClient(searchSrv.Client()),
		),
	}
	provider, err := cfg.webSearchContext(context.Background(), []string{"things to do in Toronto"})
	if err != nil {
		t.Fatalf("web search context failed: %v", err)
	}
	if provider == nil {
		t.Fatal("expected a provider")
	}
	if provider.Title() != webSearchProviderTitle {
		t.Errorf("unexpected provider title: %q", provider.Title())
	}
	if !strings.Contains(provider.Info(), "CN Tower") || !strings.Contains(provider.Info(), "https://example.com/cn-tower") {
		t.Errorf("provider info missing search hit: %q", provider.Info())
	}
}

func TestWebSearchContextNoResults(t *testing.T) {
	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query": "q", "number_of_results": 0, "results": []}`))
	}))
	defer searchSrv.Close()

	cfg := &Config{
		searchTool: searxng.New(
			searxng.WithBaseURL(searchSrv.URL),
			searxng.WithHttpClient(searchSrv.Client()),
		),
	}
	provider, err := cfg.webSearchContext(context.Background(), []string{"q"})
	if err != nil {
		t.Fatalf("web search context failed: %v", err)
	}
	if provider != nil {
		t.Errorf("expected nil provider for empty results, got %q", provider.Info())
	}
}

func TestWebSearchContextVenueEnrichment(t *testing.T) {
	venueSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>CN Tower</title></head><body><main><p>Observation decks and a glass floor.</p></main></body></html>`))
	}))
	defer venueSrv.Close()

	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
  "query": "things to do in Toronto",
  "number_of_results": 1,
  "results": [
    {"url": "` + venueSrv.URL + `", "title": "CN Tower", "content": "Iconic Toronto landmark."}
  ]
}`))
	}))
	defer searchSrv.Close()

	cfg := &Config{
		searchTool: searxng.New(
			searxng.WithBaseURL(searchSrv.URL),
			searxng.WithHttpClient(searchSrv.Client()),
		),
		venueTool:  venuepage.New(venuepage.WithHttpClient(venueSrv.Client())),
		venueLimit: 1,
	}
	provider, err := cfg.webSearchContext(context.Background(), []string{"things to do in Toronto"})
	if err != nil {
		t.Fatalf("web search context failed: %v", err)
	}
	if provider == nil {
		t.Fatal("expected a provider")
	}
	if !strings.Contains(provider.Info(), "glass floor") {
		t.Errorf("provider info missing venue content: %q", provider.Info())
	}
}
