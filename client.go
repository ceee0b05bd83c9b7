package claudetext

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/skosovsky/claudetext/internal/cast"
)

// completionsClient implements CompletionService on the official Anthropic
// SDK: Completions.New / Completions.NewStreaming for generation and
// Messages.CountTokens for counting. Retries, TLS, and rate limiting are the
// SDK's concern; provider errors pass through untouched.
type completionsClient struct {
	client     anthropic.Client
	countModel anthropic.Model
}

var _ CompletionService = (*completionsClient)(nil)

func newCompletionsClient(apiKey, baseURL string, timeout time.Duration, countModel string) *completionsClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &completionsClient{
		client:     anthropic.NewClient(opts...),
		countModel: anthropic.Model(countModel),
	}
}

// Complete implements CompletionService.
func (c *completionsClient) Complete(ctx context.Context, prompt string, stopSequences []string, params map[string]any) (string, error) {
	body, opts, err := buildRequest(prompt, stopSequences, params)
	if err != nil {
		return "", err
	}
	completion, err := c.client.Completions.New(ctx, body, opts...)
	if err != nil {
		return "", err
	}
	return completion.Completion, nil
}

// Stream implements CompletionService.
func (c *completionsClient) Stream(ctx context.Context, prompt string, stopSequences []string, params map[string]any) CompletionStream {
	body, opts, err := buildRequest(prompt, stopSequences, params)
	if err != nil {
		return &failedStream{err: err}
	}
	return &sseStream{stream: c.client.Completions.NewStreaming(ctx, body, opts...)}
}

// CountTokens implements CompletionService. The completions surface has no
// counting endpoint in the current API, so the text is counted as a single
// user message against the configured model.
func (c *completionsClient) CountTokens(ctx context.Context, text string) (int, error) {
	count, err := c.client.Messages.CountTokens(ctx, anthropic.MessageCountTokensParams{
		Model: c.countModel,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return 0, err
	}
	return int(count.InputTokens), nil
}

// buildRequest splits the flat parameter map into typed SDK fields and
// forwards every unknown key verbatim as a JSON body patch, so provider
// features the adapter does not model still work through overrides.
func buildRequest(prompt string, stopSequences []string, params map[string]any) (anthropic.CompletionNewParams, []option.RequestOption, error) {
	body := anthropic.CompletionNewParams{
		Prompt:        prompt,
		StopSequences: stopSequences,
	}
	var opts []option.RequestOption
	for key, value := range params {
		switch key {
		case "model":
			s, ok := cast.ToString(value)
			if !ok {
				return anthropic.CompletionNewParams{}, nil, paramError(key, value)
			}
			body.Model = anthropic.Model(s)
		case "max_tokens_to_sample":
			n, ok := cast.ToInt64(value)
			if !ok {
				return anthropic.CompletionNewParams{}, nil, paramError(key, value)
			}
			body.MaxTokensToSample = n
		case "temperature":
			f, ok := cast.ToFloat64(value)
			if !ok {
				return anthropic.CompletionNewParams{}, nil, paramError(key, value)
			}
			body.Temperature = anthropic.Float(f)
		case "top_k":
			n, ok := cast.ToInt64(value)
			if !ok {
				return anthropic.CompletionNewParams{}, nil, paramError(key, value)
			}
			body.TopK = anthropic.Int(n)
		case "top_p":
			f, ok := cast.ToFloat64(value)
			if !ok {
				return anthropic.CompletionNewParams{}, nil, paramError(key, value)
			}
			body.TopP = anthropic.Float(f)
		default:
			opts = append(opts, option.WithJSONSet(key, value))
		}
	}
	return body, opts, nil
}

func paramError(key string, value any) error {
	return fmt.Errorf("%w: %s=%v (%T)", ErrInvalidParameter, key, value, value)
}

// sseStream adapts the SDK's SSE stream to CompletionStream.
type sseStream struct {
	stream *ssestream.Stream[anthropic.Completion]
}

func (s *sseStream) Next() bool { return s.stream.Next() }

func (s *sseStream) Current() Chunk {
	event := s.stream.Current()
	return Chunk{Text: event.Completion, StopReason: string(event.StopReason)}
}

func (s *sseStream) Err() error   { return s.stream.Err() }
func (s *sseStream) Close() error { return s.stream.Close() }

// failedStream reports a request that could not be built at all. It keeps
// the Stream signature uniform: parameter type errors surface through Err
// like any other pre-first-event failure.
type failedStream struct{ err error }

func (s *failedStream) Next() bool     { return false }
func (s *failedStream) Current() Chunk { return Chunk{} }
func (s *failedStream) Err() error     { return s.err }
func (s *failedStream) Close() error   { return nil }
