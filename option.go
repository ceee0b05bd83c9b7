package claudetext

import (
	"log/slog"
	"time"
)

// Option configures the LLM at construction (functional options pattern).
type Option func(*LLM)

// WithModel sets the model identifier. Default is DefaultModel.
func WithModel(model string) Option {
	return func(l *LLM) { l.model = model }
}

// WithMaxTokensToSample caps the number of tokens generated per request.
// Default is DefaultMaxTokensToSample.
func WithMaxTokensToSample(n int64) Option {
	return func(l *LLM) { l.maxTokensToSample = n }
}

// WithTemperature sets the sampling temperature. When unset, the key is
// omitted from requests and the provider applies its own default.
func WithTemperature(t float64) Option {
	return func(l *LLM) { l.temperature = &t }
}

// WithTopK sets the number of most likely tokens considered at each step.
// Omitted from requests when unset.
func WithTopK(k int64) Option {
	return func(l *LLM) { l.topK = &k }
}

// WithTopP sets the nucleus sampling probability mass. Omitted from requests
// when unset.
func WithTopP(p float64) Option {
	return func(l *LLM) { l.topP = &p }
}

// WithRequestTimeout sets the transport-level request timeout. The value is
// passed through to the SDK client; the adapter enforces no deadline of its
// own.
func WithRequestTimeout(d time.Duration) Option {
	return func(l *LLM) { l.requestTimeout = d }
}

// WithBaseURL overrides the API endpoint. Default resolution is the
// ANTHROPIC_API_URL environment variable, then DefaultBaseURL.
func WithBaseURL(url string) Option {
	return func(l *LLM) { l.baseURL = url }
}

// WithAPIKey sets the API key. If not provided, New reads ANTHROPIC_API_KEY
// and fails when neither is available.
func WithAPIKey(key string) Option {
	return func(l *LLM) { l.apiKey = key }
}

// WithExtraParams sets provider-specific request keys not covered by named
// options. They merge below per-call overrides; keys colliding with named
// options are dropped at construction with a warning.
func WithExtraParams(params map[string]any) Option {
	return func(l *LLM) { l.extraParams = params }
}

// WithStreaming makes Complete and CompleteAsync consume a single streaming
// request internally and return the concatenated chunk texts.
func WithStreaming(enabled bool) Option {
	return func(l *LLM) { l.streaming = enabled }
}

// WithHumanPrompt overrides the human turn marker. Default is HumanPrompt.
func WithHumanPrompt(marker string) Option {
	return func(l *LLM) { l.humanPrompt = marker }
}

// WithAIPrompt overrides the assistant turn marker. Default is AIPrompt.
func WithAIPrompt(marker string) Option {
	return func(l *LLM) { l.aiPrompt = marker }
}

// WithTokenCounter injects a local token counter used by CountTokens instead
// of the provider's counting endpoint.
func WithTokenCounter(tc TokenCounter) Option {
	return func(l *LLM) { l.tokenCounter = tc }
}

// WithLogger sets the logger for construction-time diagnostics.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *LLM) { l.logger = logger }
}

// WithCompletionService injects the transport client, replacing the Anthropic
// SDK client New would build. Intended for tests and custom transports.
func WithCompletionService(svc CompletionService) Option {
	return func(l *LLM) { l.client = svc }
}
