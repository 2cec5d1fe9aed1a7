package generator

import (
	"context"
	"strings"
)

// MockLLM is an offline stand-in that never calls a model.
// With Err set it fails; otherwise it returns Reply, or an echo of the prompt when Reply is empty.
type MockLLM struct {
	Reply string
	Err   error

	Prompts []Prompt
}

func (m *MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	var sb strings.Builder
	sb.WriteString("**Mock post**\n\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n#mock")
	return sb.String(), nil
}
