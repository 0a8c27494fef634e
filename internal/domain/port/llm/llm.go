package llm

import "context"

// ChatCompleter sends a prompt pair to a hosted text-completion service and
// returns the raw reply text. Implementations own transport, auth and model
// selection; callers own prompt construction and response parsing.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
