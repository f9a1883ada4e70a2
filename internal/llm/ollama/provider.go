package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/llm"
)

const name = "ollama"

// Provider implements llm.VisionProvider for a local Ollama server
type Provider struct {
	host         string
	defaultModel string
	client       *http.Client
}

// NewProvider creates a new Ollama provider
func NewProvider(cfg config.OllamaConfig) *Provider {
	model := cfg.DefaultModel
	if model == "" {
		model = "llava"
	}
	return &Provider{
		host:         strings.TrimRight(cfg.Host, "/"),
		defaultModel: model,
		client:       &http.Client{Timeout: 300 * time.Second},
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return name
}

// AvailableModels returns list of supported models
func (p *Provider) AvailableModels() []string {
	return []string{
		"llava",
		"llava-llama3",
		"llama3.2-vision",
		"bakllava",
		"moondream",
	}
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has a host
func (p *Provider) IsConfigured() bool {
	return p.host != ""
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Images  []string       `json:"images"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Response  string `json:"response"`
	Done      bool   `json:"done"`
	EvalCount int    `json:"eval_count"`
}

// AnalyzeImage runs a non-streaming generate call with the image attached
func (p *Provider) AnalyzeImage(ctx context.Context, req llm.VisionRequest, model string) (*llm.VisionResponse, error) {
	if model == "" {
		model = p.defaultModel
	}

	options := map[string]any{"temperature": req.Temperature}
	if req.MaxTokens > 0 {
		options["num_predict"] = req.MaxTokens
	}

	ollamaReq := ollamaRequest{
		Model:   model,
		Prompt:  req.Prompt,
		Images:  []string{req.ImageBase64},
		Stream:  false,
		Format:  "json",
		Options: options,
	}

	body, err := json.Marshal(ollamaReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, llm.TransportError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, llm.StatusError(name, resp)
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return nil, llm.TransportError(name, fmt.Errorf("failed to decode response: %w", err))
	}

	return &llm.VisionResponse{
		Content:    ollamaResp.Response,
		Model:      model,
		TokensUsed: ollamaResp.EvalCount,
		LatencyMs:  time.Since(start).Milliseconds(),
	}, nil
}
