package claudetext

import "context"

// Turn markers of the legacy completions wire format. The current Anthropic
// SDK no longer exports these constants, so they are fixed here once and can
// be overridden with WithHumanPrompt / WithAIPrompt.
const (
	HumanPrompt = "\n\nHuman:"
	AIPrompt    = "\n\nAssistant:"
)

// Defaults applied by New when no option overrides them.
const (
	DefaultModel             = "claude-2"
	DefaultMaxTokensToSample = 256
	DefaultBaseURL           = "https://api.anthropic.com"
)

// Environment variables consulted once at construction time, never re-read.
const (
	EnvAPIKey  = "ANTHROPIC_API_KEY"
	EnvBaseURL = "ANTHROPIC_API_URL"
)

// Chunk is one incremental fragment of generated text delivered during
// streaming. StopReason is set when the provider reports why generation
// ended (e.g. "stop_sequence", "max_tokens").
type Chunk struct {
	Text       string
	StopReason string
}

// StreamEvent is one element of the channel returned by LLM.StreamAsync.
// Err is non-nil only on the terminal event of a failed stream.
type StreamEvent struct {
	Chunk Chunk
	Err   error
}

// CompletionResult is the single value delivered by LLM.CompleteAsync.
type CompletionResult struct {
	Text string
	Err  error
}

// Observer receives each streamed chunk before it reaches the consumer.
// Notification is synchronous with stream production, so implementations
// that block delay the stream by the same amount.
type Observer interface {
	OnNewToken(ctx context.Context, chunk Chunk)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, chunk Chunk)

// OnNewToken implements Observer.
func (f ObserverFunc) OnNewToken(ctx context.Context, chunk Chunk) { f(ctx, chunk) }

// CompletionService is the transport capability the adapter is built on.
// The production implementation wraps the official Anthropic SDK; tests
// substitute scripted fakes. Implementations must not retry, translate, or
// swallow provider errors.
type CompletionService interface {
	// Complete issues one blocking completion request and returns the
	// generated text verbatim.
	Complete(ctx context.Context, prompt string, stopSequences []string, params map[string]any) (string, error)
	// Stream issues one streaming completion request. The returned stream is
	// finite and non-restartable; a request that fails before the first
	// event surfaces through Err after Next returns false.
	Stream(ctx context.Context, prompt string, stopSequences []string, params map[string]any) CompletionStream
	// CountTokens reports the provider's token count for text.
	CountTokens(ctx context.Context, text string) (int, error)
}

// CompletionStream is a pull iterator over streamed completion events,
// mirroring the SDK's SSE stream shape. Close releases the underlying
// connection and must be called when iteration stops early.
type CompletionStream interface {
	Next() bool
	Current() Chunk
	Err() error
	Close() error
}
