package generator

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrCompletion wraps any failure of the completion call.
	ErrCompletion = errors.New("completion failed")
	// ErrNoHooks means the model answered but nothing survived parsing.
	ErrNoHooks = errors.New("failed to parse hooks from model response")
)

// Agent 负责 校验 -> 构造提示词 -> 调用模型 -> 解析 的完整流程。
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate runs one request through the pipeline. Validation errors are
// returned before the model is called.
func (a *Agent) Generate(ctx context.Context, req Request) (Result, error) {
	req, err := Validate(req)
	if err != nil {
		return Result{}, err
	}

	raw, err := a.llm.Complete(ctx, BuildPrompt(req))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCompletion, err)
	}

	hooks := ParseHooks(raw)
	if len(hooks) == 0 {
		return Result{}, ErrNoHooks
	}
	return Result{Hooks: hooks, Platform: req.Platform, Topic: req.Topic}, nil
}

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) || errors.Is(err, ErrTopicLength)
}
