package generator

import (
	"context"
	"strings"
	"sync"
)

// MockLLM 一个简单的占位实现，不调用外部模型。
// With no Response set it returns a fixed five-item numbered list.
type MockLLM struct {
	Response string
	Err      error

	mu    sync.Mutex
	calls []Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, prompt)
	m.mu.Unlock()

	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	var sb strings.Builder
	sb.WriteString("1. Stop scrolling if you care about this\n")
	sb.WriteString("2. Nobody tells you this part\n")
	sb.WriteString("3. I tried this for 30 days\n")
	sb.WriteString("4. This changed everything for me\n")
	sb.WriteString("5. You are doing it wrong\n")
	return sb.String(), nil
}

// Calls returns the prompts received so far.
func (m *MockLLM) Calls() []Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Prompt(nil), m.calls...)
}
