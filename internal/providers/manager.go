package providers

import (
	"fmt"
	"strings"

	"docquery/internal/config"
)

// ProviderRef is one entry parsed from the provider list config, e.g.
// "gemini", "openai:alias1" or "mock".
type ProviderRef struct {
	Raw      string
	Name     string
	KeyAlias string
}

type namedProvider struct {
	ref      ProviderRef
	provider LLMProvider
}

// Manager holds the configured generation providers in priority order.
type Manager struct {
	providers []namedProvider
}

func NewManager(cfg config.Config) (*Manager, error) {
	m := &Manager{}
	for _, ref := range ParseProviderList(cfg.LLMProviders) {
		p, err := buildProvider(ref)
		if err != nil {
			return nil, err
		}
		m.providers = append(m.providers, namedProvider{ref: ref, provider: p})
	}
	if len(m.providers) == 0 {
		m.providers = []namedProvider{{ref: ProviderRef{Raw: "mock", Name: "mock"}, provider: NewMockProvider()}}
	}
	return m, nil
}

// ParseProviderList splits a "name|name:alias|..." provider config string.
func ParseProviderList(raw string) []ProviderRef {
	parts := strings.Split(raw, "|")
	out := make([]ProviderRef, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ref := ProviderRef{Raw: p, Name: p}
		if name, alias, ok := strings.Cut(p, ":"); ok {
			ref.Name = strings.TrimSpace(name)
			ref.KeyAlias = strings.TrimSpace(alias)
		}
		out = append(out, ref)
	}
	return out
}

// First returns the highest-priority provider.
func (m *Manager) First() (LLMProvider, ProviderRef) {
	return m.providers[0].provider, m.providers[0].ref
}

func (m *Manager) Count() int { return len(m.providers) }

// PreferredOrder lists provider indices with real providers ahead of mock.
func (m *Manager) PreferredOrder() []int {
	out := make([]int, 0, len(m.providers))
	for i := range m.providers {
		if strings.ToLower(m.providers[i].ref.Name) != "mock" {
			out = append(out, i)
		}
	}
	for i := range m.providers {
		if strings.ToLower(m.providers[i].ref.Name) == "mock" {
			out = append(out, i)
		}
	}
	return out
}

// ByIndex returns the provider at i, clamped into range.
func (m *Manager) ByIndex(i int) (LLMProvider, ProviderRef) {
	if i < 0 || i >= len(m.providers) {
		i = 0
	}
	return m.providers[i].provider, m.providers[i].ref
}

func buildProvider(ref ProviderRef) (LLMProvider, error) {
	switch strings.ToLower(ref.Name) {
	case "mock":
		return NewMockProvider(), nil
	case "gemini":
		return NewGeminiProvider(ref.KeyAlias), nil
	case "openai":
		return NewOpenAIProvider(ref.KeyAlias), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", ref.Name)
	}
}
