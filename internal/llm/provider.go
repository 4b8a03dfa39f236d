package llm

import "context"

// Provider is the single external capability the interview core depends on:
// a synchronous text completion. Implementations return the raw generated
// text; format-specific parsing (JSON, key/value blocks) belongs to the
// callers, never here.
type Provider interface {
	Complete(ctx context.Context, systemContext, userText string) (string, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, systemContext, userText string) (string, error)

func (f ProviderFunc) Complete(ctx context.Context, systemContext, userText string) (string, error) {
	return f(ctx, systemContext, userText)
}
