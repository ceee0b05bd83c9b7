package claudetext

import "unicode/utf8"

// TokenCounter counts tokens locally. Inject one with WithTokenCounter to
// keep LLM.CountTokens off the network; without it, counting is delegated to
// the provider's endpoint.
type TokenCounter interface {
	Count(text string) (int, error)
}

// TokenCounterFunc adapts a plain counting function to TokenCounter.
type TokenCounterFunc func(text string) (int, error)

// Count implements TokenCounter.
func (f TokenCounterFunc) Count(text string) (int, error) { return f(text) }

// RuneEstimate returns a TokenCounter approximating tokens as
// ceil(runes/charsPerToken). A charsPerToken of zero or less means 4, the
// English-text average. Exact only by accident; good enough for budgeting.
func RuneEstimate(charsPerToken int) TokenCounter {
	if charsPerToken <= 0 {
		charsPerToken = 4
	}
	return TokenCounterFunc(func(text string) (int, error) {
		n := utf8.RuneCountInString(text)
		return (n + charsPerToken - 1) / charsPerToken, nil
	})
}
