package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Rrens/fitsmart/internal/llm"
)

// MockVisionProvider mocks the llm.VisionProvider interface
type MockVisionProvider struct {
	mock.Mock
}

func (m *MockVisionProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockVisionProvider) AvailableModels() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockVisionProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockVisionProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockVisionProvider) AnalyzeImage(ctx context.Context, req llm.VisionRequest, model string) (*llm.VisionResponse, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.VisionResponse), args.Error(1)
}

// MockKeyValueStore mocks the domain.KeyValueStore interface
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockKeyValueStore) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func newMockProvider(name string) *MockVisionProvider {
	p := new(MockVisionProvider)
	p.On("Name").Return(name)
	p.On("IsConfigured").Return(true)
	p.On("AvailableModels").Return([]string{name + "-vision"}).Maybe()
	return p
}
