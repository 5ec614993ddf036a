package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/backend/domain"
)

// Gemini calls the Google generative-language API and parses its
// structured-JSON response into activity suggestions. The response schema is
// declared to the provider so the returned text is already a JSON array of
// {title, description, steps} objects.
type Gemini struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
	logger      *zap.Logger
}

// Config mirrors config.SuggestConfig without importing the config package.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
}

// NewGemini builds the provider client. Callers should not construct one
// without an API key; wire a nil Suggester instead to disable the feature.
func NewGemini(cfg Config, logger *zap.Logger) *Gemini {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.8
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gemini{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		logger:      logger,
	}
}

type generateRequest struct {
	Contents         []content       `json:"contents"`
	GenerationConfig *generateConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema"`
	Temperature      float64 `json:"temperature"`
}

type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

var suggestionSchema = &schema{
	Type: "ARRAY",
	Items: &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"title": {
				Type:        "STRING",
				Description: "Um título conciso e acionável para a atividade de desenvolvimento.",
			},
			"description": {
				Type:        "STRING",
				Description: "Uma breve descrição (1-2 frases) explicando o propósito e o benefício da atividade.",
			},
			"steps": {
				Type:        "ARRAY",
				Description: "Uma lista de 2 a 3 passos práticos que o orientado pode seguir para completar a atividade.",
				Items:       &schema{Type: "STRING"},
			},
		},
		Required: []string{"title", "description", "steps"},
	},
}

// Suggest asks the model for three development activities tailored to the
// mentee's maturity profile.
func (g *Gemini) Suggest(ctx context.Context, level domain.MaturityLevelInfo) ([]domain.ActivitySuggestion, error) {
	prompt := buildPrompt(level)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generateConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   suggestionSchema,
			Temperature:      g.temperature,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggest.Gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("suggest.Gemini: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggest.Gemini: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("suggest.Gemini: decode envelope: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("suggest.Gemini: empty candidate list")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	var suggestions []domain.ActivitySuggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("suggest.Gemini: decode suggestions: %w", err)
	}

	g.logger.Debug("suggestions generated",
		zap.Int("level", level.Level),
		zap.Int("count", len(suggestions)))
	return suggestions, nil
}

func buildPrompt(level domain.MaturityLevelInfo) string {
	var b strings.Builder
	b.WriteString("Você é um coach de desenvolvimento de carreira e liderança.\n")
	b.WriteString("Um mentor precisa de sugestões de atividades para um orientado (mentee) com o seguinte perfil:\n\n")
	fmt.Fprintf(&b, "- Nível de Maturidade: %s (%d)\n", level.Name, level.Level)
	fmt.Fprintf(&b, "- Características Principais: %s\n\n", strings.Join(level.Characteristics, ", "))
	b.WriteString("Com base nesse perfil, gere 3 sugestões de atividades de desenvolvimento detalhadas e criativas.\n")
	b.WriteString("As sugestões devem ser práticas e ajudar o orientado a avançar para o próximo nível de maturidade.")
	return b.String()
}
