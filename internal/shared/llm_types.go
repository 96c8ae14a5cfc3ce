// Package shared holds the small types passed between the language-model
// clients, the assistant and the metrics store.
package shared

import "time"

// TokenUsage is the token accounting for one model call, tagged with the
// model that served it.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// AgentMeta describes one assistant execution: which agent ran, what it
// consumed and how long the call took end to end.
type AgentMeta struct {
	AgentName string
	Usage     TokenUsage
	Latency   time.Duration
}
