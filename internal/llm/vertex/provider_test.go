package vertex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/llm"
)

func TestProvider_IsConfigured(t *testing.T) {
	assert.False(t, NewProvider(config.VertexConfig{ProjectID: "p"}).IsConfigured())
	assert.True(t, NewProvider(config.VertexConfig{ProjectID: "p", Location: "us-central1"}).IsConfigured())
}

func TestProvider_ClientOptions(t *testing.T) {
	assert.Empty(t, NewProvider(config.VertexConfig{}).clientOptions())
	assert.Len(t, NewProvider(config.VertexConfig{CredentialsFile: "/tmp/creds.json"}).clientOptions(), 1)
}

func TestProvider_AnalyzeImage_InvalidImage(t *testing.T) {
	p := NewProvider(config.VertexConfig{ProjectID: "p", Location: "us-central1"})
	_, err := p.AnalyzeImage(context.Background(), llm.VisionRequest{ImageBase64: "not base64!"}, "")

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "vertex", upstream.Provider)
	assert.Equal(t, "gemini-1.5-flash", NewProvider(config.VertexConfig{}).DefaultModel())
}
