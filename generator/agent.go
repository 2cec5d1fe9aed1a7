package generator

import (
	"context"
	"errors"
)

// Agent turns a daily selection into a post.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate requests one completion for sel. Failures come back inside the Result.
func (a *Agent) Generate(ctx context.Context, sel Selection) Result {
	raw, err := a.llm.Complete(ctx, BuildPostPrompt(sel))
	if err != nil {
		return Result{Err: err}
	}
	return Result{Content: CleanPost(raw)}
}
