package providers

import (
	"context"
	"strconv"
	"strings"
)

// MockProvider produces deterministic answers without network access.
// It is the default provider so the system runs offline and in tests.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, ProviderInfo, error) {
	_ = ctx
	info := ProviderInfo{Name: "mock", Model: "mock-llm-v1", Key: "mock"}
	if len(req.Context) == 0 {
		return GenerateResponse{Text: "I don't have enough information to answer that question."}, info, nil
	}
	var b strings.Builder
	b.WriteString("Based on the provided context (")
	b.WriteString(strconv.Itoa(len(req.Context)))
	b.WriteString(" passages), a deterministic mock answer follows.")
	for i := range req.Context {
		b.WriteString(" [")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("]")
	}
	return GenerateResponse{Text: b.String()}, info, nil
}
