package llm

import (
	"fmt"
	"sort"
	"sync"
)

// Router manages vision providers and routing
type Router struct {
	providers       map[string]VisionProvider
	defaultProvider string
	mu              sync.RWMutex
}

// NewRouter creates a new provider router
func NewRouter(defaultProvider string) *Router {
	return &Router{
		providers:       make(map[string]VisionProvider),
		defaultProvider: defaultProvider,
	}
}

// RegisterProvider registers a vision provider
func (r *Router) RegisterProvider(provider VisionProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// ListProviders returns the sorted names of configured providers
func (r *Router) ListProviders() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var providers []string
	for name, p := range r.providers {
		if p.IsConfigured() {
			providers = append(providers, name)
		}
	}
	sort.Strings(providers)
	return providers
}

// GetProvider returns a provider by name, or the default when name is empty
func (r *Router) GetProvider(name string) (VisionProvider, error) {
	if name == "" {
		name = r.defaultProvider
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider not found: %s", name)
	}

	if !p.IsConfigured() {
		return nil, fmt.Errorf("provider not configured: %s", name)
	}

	return p, nil
}

// DefaultProvider returns the default provider name
func (r *Router) DefaultProvider() string {
	return r.defaultProvider
}

// ProviderInfo contains information about a vision provider
type ProviderInfo struct {
	Name       string   `json:"name"`
	Models     []string `json:"models"`
	Default    bool     `json:"default"`
	Configured bool     `json:"configured"`
}

// GetProvidersInfo returns information about all providers, sorted by name
func (r *Router) GetProvidersInfo() []ProviderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]ProviderInfo, 0, len(r.providers))
	for name, p := range r.providers {
		infos = append(infos, ProviderInfo{
			Name:       name,
			Models:     p.AvailableModels(),
			Default:    name == r.defaultProvider,
			Configured: p.IsConfigured(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
