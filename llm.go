package claudetext

import (
	"context"
	"iter"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LLM is the completion adapter. Configuration is resolved once in New and
// read-only afterwards, so a single instance is safe for concurrent use;
// every call is an independent request with no shared state.
type LLM struct {
	model             string
	maxTokensToSample int64
	temperature       *float64
	topK              *int64
	topP              *float64
	requestTimeout    time.Duration
	baseURL           string
	apiKey            string
	extraParams       map[string]any
	streaming         bool
	humanPrompt       string
	aiPrompt          string
	tokenCounter      TokenCounter
	logger            *slog.Logger
	client            CompletionService
}

// New builds an adapter and its transport client. The API key resolves from
// WithAPIKey, then the ANTHROPIC_API_KEY environment variable; the endpoint
// from WithBaseURL, then ANTHROPIC_API_URL, then DefaultBaseURL. Environment
// variables are read here once and never again. Returns a ConfigError when
// no API key is available or a turn marker was overridden to empty.
//
// New logs a non-fatal deprecation warning: the Text Completions API is
// superseded by the Messages API.
func New(opts ...Option) (*LLM, error) {
	l := &LLM{
		model:             DefaultModel,
		maxTokensToSample: DefaultMaxTokensToSample,
		humanPrompt:       HumanPrompt,
		aiPrompt:          AIPrompt,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.apiKey == "" {
		l.apiKey = os.Getenv(EnvAPIKey)
	}
	if l.apiKey == "" {
		return nil, &ConfigError{Field: "apiKey", Err: ErrMissingAPIKey}
	}
	if l.baseURL == "" {
		l.baseURL = os.Getenv(EnvBaseURL)
	}
	if l.baseURL == "" {
		l.baseURL = DefaultBaseURL
	}
	if err := l.checkMarkers(); err != nil {
		return nil, err
	}
	l.stripReservedExtraParams()
	if l.client == nil {
		l.client = newCompletionsClient(l.apiKey, l.baseURL, l.requestTimeout, l.model)
	}
	l.logger.Warn("claudetext: the text completions adapter is deprecated, use a Messages API client instead")
	return l, nil
}

// Model returns the configured model identifier.
func (l *LLM) Model() string { return l.model }

// Complete calls the completion endpoint and returns the generated text
// verbatim. With WithStreaming the call consumes a single streaming request
// instead and returns the concatenated chunk texts in arrival order.
// Transport errors propagate unchanged; no retries happen at this layer.
func (l *LLM) Complete(ctx context.Context, prompt string, opts ...CallOption) (string, error) {
	return l.complete(ctx, prompt, newCallConfig(opts))
}

func (l *LLM) complete(ctx context.Context, prompt string, cc callConfig) (string, error) {
	if l.streaming {
		var b strings.Builder
		for chunk, err := range l.streamSeq(ctx, prompt, cc) {
			if err != nil {
				return "", err
			}
			b.WriteString(chunk.Text)
		}
		return b.String(), nil
	}
	stops, err := l.stopSequences(cc.stops)
	if err != nil {
		return "", err
	}
	wrapped, err := l.wrapPrompt(prompt)
	if err != nil {
		return "", err
	}
	return l.client.Complete(ctx, wrapped, stops, l.resolveParams(cc.overrides))
}

// CompleteAsync runs Complete in its own goroutine and delivers the single
// result on the returned channel, which is closed afterwards. The channel is
// buffered, so the result is never lost even if the consumer reads late.
func (l *LLM) CompleteAsync(ctx context.Context, prompt string, opts ...CallOption) <-chan CompletionResult {
	cc := newCallConfig(opts)
	ch := make(chan CompletionResult, 1)
	go func() {
		defer close(ch)
		text, err := l.complete(ctx, prompt, cc)
		ch <- CompletionResult{Text: text, Err: err}
	}()
	return ch
}

// Stream issues one streaming completion request and returns a lazy, finite,
// non-restartable sequence of chunks in transport order. The request is made
// when iteration starts, not when Stream returns. Breaking out of the loop
// closes the transport stream; no further chunks are requested. An observer
// registered with WithObserver sees each chunk before the consumer does.
func (l *LLM) Stream(ctx context.Context, prompt string, opts ...CallOption) iter.Seq2[Chunk, error] {
	return l.streamSeq(ctx, prompt, newCallConfig(opts))
}

func (l *LLM) streamSeq(ctx context.Context, prompt string, cc callConfig) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		stops, err := l.stopSequences(cc.stops)
		if err != nil {
			yield(Chunk{}, err)
			return
		}
		wrapped, err := l.wrapPrompt(prompt)
		if err != nil {
			yield(Chunk{}, err)
			return
		}
		stream := l.client.Stream(ctx, wrapped, stops, l.resolveParams(cc.overrides))
		defer stream.Close()
		for stream.Next() {
			chunk := stream.Current()
			if cc.observer != nil {
				cc.observer.OnNewToken(ctx, chunk)
			}
			if !yield(chunk, nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			yield(Chunk{}, err)
		}
	}
}

// StreamAsync is the channel form of Stream: a goroutine pumps chunks into
// the returned channel and closes it when the stream is exhausted. A
// transport failure arrives as the final event with Err set. Cancelling ctx
// stops transport consumption and closes the channel without draining the
// remote stream.
func (l *LLM) StreamAsync(ctx context.Context, prompt string, opts ...CallOption) <-chan StreamEvent {
	cc := newCallConfig(opts)
	ch := make(chan StreamEvent)
	go func() {
		defer close(ch)
		for chunk, err := range l.streamSeq(ctx, prompt, cc) {
			if ctx.Err() != nil {
				return
			}
			select {
			case ch <- StreamEvent{Chunk: chunk, Err: err}:
				if err != nil {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// CountTokens returns the token count for text, using the injected
// TokenCounter when one is configured and the provider's counting endpoint
// otherwise. The adapter implements no tokenization of its own.
func (l *LLM) CountTokens(ctx context.Context, text string) (int, error) {
	if l.tokenCounter != nil {
		return l.tokenCounter.Count(text)
	}
	return l.client.CountTokens(ctx, text)
}
