package openai

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

const name = "openai"

// Provider implements llm.VisionProvider for OpenAI-compatible chat completions
type Provider struct {
	apiKey       string
	defaultModel string
	detail       string
	client       *http.Client
	baseURL      string
}

// NewProvider creates a new OpenAI provider
func NewProvider(cfg config.OpenAIConfig) *Provider {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	detail := cfg.Detail
	if detail == "" {
		detail = "high"
	}
	return &Provider{
		apiKey:       cfg.APIKey,
		defaultModel: model,
		detail:       detail,
		client:       &http.Client{Timeout: 120 * time.Second},
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return name
}

// AvailableModels returns list of supported models
func (p *Provider) AvailableModels() []string {
	return []string{
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
	}
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// AnalyzeImage sends the prompt and image as a single user message
func (p *Provider) AnalyzeImage(ctx context.Context, req llm.VisionRequest, model string) (*llm.VisionResponse, error) {
	if model == "" {
		model = p.defaultModel
	}

	chatReq := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: req.Prompt},
					{Type: "image_url", ImageURL: &imageURL{URL: req.DataURI(), Detail: p.detail}},
				},
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, llm.TransportError(name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, llm.StatusError(name, resp)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, llm.TransportError(name, fmt.Errorf("failed to decode response: %w", err))
	}

	if len(chatResp.Choices) == 0 {
		return nil, llm.TransportError(name, fmt.Errorf("no choices in response"))
	}

	return &llm.VisionResponse{
		Content:    chatResp.Choices[0].Message.Content,
		Model:      model,
		TokensUsed: chatResp.Usage.TotalTokens,
		LatencyMs:  time.Since(start).Milliseconds(),
	}, nil
}
