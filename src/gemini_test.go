package studio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func searchProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	g := NewGeminiProvider(func() string { return "clave" }, zap.NewNop())
	g.searchEndpoint = srv.URL + "/models/%s:generateContent"
	return g
}

func TestGenerateTextWithSearchGrounding(t *testing.T) {
	var body []byte
	g := searchProvider(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		if r.Header.Get("x-goog-api-key") != "clave" {
			t.Errorf("key header = %q", r.Header.Get("x-goog-api-key"))
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-2.5-flash:generateContent") {
			t.Errorf("path = %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"title\":\"Titular\"}"}]}}],"usageMetadata":{"totalTokenCount":42}}`)
	})

	res, err := g.GenerateText(context.Background(), "noticias de IA", TextOptions{
		Model:      "gemini-2.5-flash",
		SystemHint: "Eres un asistente de noticias JSON.",
		WebSearch:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != `{"title":"Titular"}` {
		t.Errorf("text = %q", res.Text)
	}
	if res.Tokens == nil || *res.Tokens != 42 {
		t.Errorf("tokens = %v, want 42", res.Tokens)
	}

	sent := string(body)
	if !strings.Contains(sent, `"google_search"`) {
		t.Errorf("search tool missing from request: %s", sent)
	}
	if !strings.Contains(sent, "asistente de noticias") {
		t.Errorf("system instruction missing from request: %s", sent)
	}
}

func TestGenerateTextWithSearchQuotaError(t *testing.T) {
	g := searchProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"RESOURCE_EXHAUSTED: quota"}}`)
	})

	_, err := g.GenerateText(context.Background(), "noticias", TextOptions{Model: "gemini-2.5-flash", WebSearch: true})
	if err == nil {
		t.Fatal("expected error")
	}
	if ce := ClassifyError(err, "al buscar noticias"); ce.Category != CategoryQuotaExceeded {
		t.Errorf("category = %v for %v", ce.Category, err)
	}
}

func TestGenerateTextWithSearchMissingKey(t *testing.T) {
	g := NewGeminiProvider(func() string { return "" }, zap.NewNop())
	if _, err := g.GenerateText(context.Background(), "p", TextOptions{WebSearch: true}); err != ErrMissingAPIKey {
		t.Fatalf("err = %v", err)
	}
}
