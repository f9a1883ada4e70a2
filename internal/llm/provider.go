package llm

import "context"

// VisionRequest contains the parameters of an image analysis call
type VisionRequest struct {
	Prompt string
	// ImageBase64 is the raw base64 payload without a data URI prefix
	ImageBase64 string
	MIMEType    string
	MaxTokens   int
	Temperature float64
}

// DataURI rebuilds the data URI form of the image
func (r VisionRequest) DataURI() string {
	return "data:" + r.MIMEType + ";base64," + r.ImageBase64
}

// VisionResponse contains the model's text reply
type VisionResponse struct {
	Content    string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// VisionProvider defines the interface for multimodal LLM providers
type VisionProvider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// AnalyzeImage sends the prompt and image and returns the reply text
	AnalyzeImage(ctx context.Context, req VisionRequest, model string) (*VisionResponse, error)
}
