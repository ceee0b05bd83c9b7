// Package claudetext adapts Anthropic's legacy Text Completions API to a
// uniform call/stream interface for prompt-orchestration code. It normalizes
// configuration, frames raw prompts with Human/Assistant turn markers, and
// translates responses and SSE streams into plain strings or chunk sequences.
// Transport concerns (TLS, retries, rate limiting) belong to the underlying
// SDK client and are not handled here.
//
// Deprecated: the Text Completions API is superseded by the Messages API.
// This package exists for callers that still depend on the legacy prompt
// framing; New logs a warning on every construction.
package claudetext
