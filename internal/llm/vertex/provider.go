// Package vertex analyzes meal photos with Gemini models hosted on Vertex AI.
package vertex

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/llm"
)

const name = "vertex"

// Provider implements llm.VisionProvider for Vertex AI
type Provider struct {
	projectID       string
	location        string
	credentialsFile string
	model           string
}

// NewProvider creates a Vertex AI provider; the client is created per call
func NewProvider(cfg config.VertexConfig) *Provider {
	return &Provider{
		projectID:       cfg.ProjectID,
		location:        cfg.Location,
		credentialsFile: cfg.CredentialsFile,
		model:           cfg.Model,
	}
}

func (p *Provider) Name() string {
	return name
}

func (p *Provider) AvailableModels() []string {
	return []string{
		"gemini-1.5-flash",
		"gemini-1.5-pro",
		"gemini-2.0-flash",
	}
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return "gemini-1.5-flash"
}

// IsConfigured reports whether a project and location are set
func (p *Provider) IsConfigured() bool {
	return p.projectID != "" && p.location != ""
}

func (p *Provider) clientOptions() []option.ClientOption {
	opts := []option.ClientOption{}
	if p.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(p.credentialsFile))
	}
	return opts
}

func (p *Provider) AnalyzeImage(ctx context.Context, req llm.VisionRequest, model string) (*llm.VisionResponse, error) {
	if !p.IsConfigured() {
		return nil, fmt.Errorf("vertex provider is not configured (missing project or location)")
	}

	if model == "" {
		model = p.DefaultModel()
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, llm.TransportError(name, fmt.Errorf("failed to decode image: %w", err))
	}

	client, err := genai.NewClient(ctx, p.projectID, p.location, p.clientOptions()...)
	if err != nil {
		return nil, llm.TransportError(name, fmt.Errorf("failed to create client: %w", err))
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
	if err != nil {
		return nil, llm.SDKError(name, fmt.Errorf("failed to call vertex: %w", err))
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, llm.TransportError(name, fmt.Errorf("no response generated"))
	}

	var output strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output.WriteString(string(text))
		}
	}
	if output.Len() == 0 {
		return nil, llm.TransportError(name, fmt.Errorf("no content in response"))
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &llm.VisionResponse{
		Content:    output.String(),
		Model:      model,
		TokensUsed: tokensUsed,
		LatencyMs:  time.Since(start).Milliseconds(),
	}, nil
}
