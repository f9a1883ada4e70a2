package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/llm"
)

const name = "gemini"

type Provider struct {
	apiKey string
	model  string
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string {
	return name
}

func (p *Provider) AvailableModels() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	}
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return "gemini-1.5-flash"
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) AnalyzeImage(ctx context.Context, req llm.VisionRequest, model string) (*llm.VisionResponse, error) {
	if !p.IsConfigured() {
		return nil, fmt.Errorf("gemini provider is not configured (missing API key)")
	}

	if model == "" {
		model = p.DefaultModel()
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, llm.TransportError(name, fmt.Errorf("failed to decode image: %w", err))
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, llm.TransportError(name, fmt.Errorf("failed to create gemini client: %w", err))
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)
	generativeModel.SetTemperature(float32(req.Temperature))
	if req.MaxTokens > 0 {
		generativeModel.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	img := genai.ImageData(strings.TrimPrefix(req.MIMEType, "image/"), image)

	start := time.Now()
	resp, err := generativeModel.GenerateContent(ctx, genai.Text(req.Prompt), img)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return nil, llm.SDKError(name, fmt.Errorf("gemini generation error: %w", err))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, llm.TransportError(name, fmt.Errorf("empty response from gemini"))
	}

	var output strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output.WriteString(string(text))
		}
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &llm.VisionResponse{
		Content:    output.String(),
		Model:      model,
		TokensUsed: tokensUsed,
		LatencyMs:  latency,
	}, nil
}
