package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/llm"
)

func TestProvider_AnalyzeImage(t *testing.T) {
	var got anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Write([]byte(`{"content":[{"type":"text","text":"{\"calories\":1}"}],"usage":{"input_tokens":10,"output_tokens":5}}`))
	}))
	defer server.Close()

	p := NewProvider(config.AnthropicConfig{APIKey: "key", BaseURL: server.URL})
	resp, err := p.AnalyzeImage(context.Background(), llm.VisionRequest{
		Prompt:      "analyze",
		ImageBase64: "iVBOR",
		MIMEType:    "image/png",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, `{"calories":1}`, resp.Content)
	assert.Equal(t, 15, resp.TokensUsed)
	assert.Equal(t, 1000, got.MaxTokens)
	require.Len(t, got.Messages[0].Content, 2)
	assert.Equal(t, "image/png", got.Messages[0].Content[0].Source.MediaType)
	assert.Equal(t, "iVBOR", got.Messages[0].Content[0].Source.Data)
	assert.Equal(t, "analyze", got.Messages[0].Content[1].Text)
}

func TestProvider_AnalyzeImage_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	p := NewProvider(config.AnthropicConfig{APIKey: "bad", BaseURL: server.URL})
	_, err := p.AnalyzeImage(context.Background(), llm.VisionRequest{MIMEType: "image/jpeg"}, "")

	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Equal(t, `{"type":"error"}`, upstream.Payload)
}
