package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mentorhub/backend/domain"
)

func level3(t *testing.T) domain.MaturityLevelInfo {
	t.Helper()
	level, ok := domain.LevelByNumber(3)
	if !ok {
		t.Fatal("level 3 missing from catalog")
	}
	return level
}

func candidateBody(t *testing.T, payload string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": payload}}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestSuggestParsesStructuredResponse(t *testing.T) {
	suggestionsJSON := `[
		{"title": "Mentorar um colega", "description": "Praticar liderança.", "steps": ["Escolher um colega", "Agendar sessões"]},
		{"title": "Liderar uma retro", "description": "Exercitar facilitação.", "steps": ["Preparar pauta", "Facilitar", "Coletar feedback"]},
		{"title": "Estudar arquitetura", "description": "Ampliar visão sistêmica.", "steps": ["Ler referências", "Aplicar num projeto"]}
	]`

	var gotPath string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write(candidateBody(t, suggestionsJSON)) //nolint:errcheck
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	suggestions, err := g.Suggest(context.Background(), level3(t))
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if len(suggestions) != 3 {
		t.Fatalf("len(suggestions) = %d, want 3", len(suggestions))
	}
	if suggestions[0].Title != "Mentorar um colega" || len(suggestions[0].Steps) != 2 {
		t.Errorf("suggestions[0] = %+v", suggestions[0])
	}

	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotReq.GenerationConfig == nil || gotReq.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Errorf("generationConfig = %+v, want application/json response", gotReq.GenerationConfig)
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 {
		t.Fatalf("contents = %+v", gotReq.Contents)
	}
	prompt := gotReq.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Pleno I (Autônomo)") || !strings.Contains(prompt, "(3)") {
		t.Errorf("prompt missing level profile: %q", prompt)
	}
}

func TestSuggestErrorConditions(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"http error status",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
			},
		},
		{
			"no candidates",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": []}`)) //nolint:errcheck
			},
		},
		{
			"candidate text is not json",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "not json"}]}}]}`)) //nolint:errcheck
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			g := NewGemini(Config{APIKey: "k", BaseURL: srv.URL}, nil)
			if _, err := g.Suggest(context.Background(), level3(t)); err == nil {
				t.Error("Suggest() returned nil error")
			}
		})
	}
}

func TestSuggestTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	g := NewGemini(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, nil)
	if _, err := g.Suggest(context.Background(), level3(t)); err == nil {
		t.Error("Suggest() did not time out")
	}
}
