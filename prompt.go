package claudetext

import (
	"regexp"
	"strings"
)

// humanTokenPattern matches the common authoring mistake of a bare "Human:"
// opener with the wrong number of leading newlines.
var humanTokenPattern = regexp.MustCompile(`^\n*Human:`)

// wrapPrompt frames a raw prompt for the completions wire format.
// Already-framed prompts pass through unchanged. A leading "Human:" with any
// number of newlines is corrected to the configured marker. Anything else is
// wrapped as a full turn with a fixed compliant opening; downstream parsers
// depend on that exact text, so it must not change.
func (l *LLM) wrapPrompt(prompt string) (string, error) {
	if err := l.checkMarkers(); err != nil {
		return "", err
	}
	if strings.HasPrefix(prompt, l.humanPrompt) {
		return prompt, nil
	}
	if loc := humanTokenPattern.FindStringIndex(prompt); loc != nil {
		return l.humanPrompt + prompt[loc[1]:], nil
	}
	return l.humanPrompt + " " + prompt + l.aiPrompt + " Sure, here you go:\n", nil
}

// ConvertPrompt returns the framed form of prompt exactly as a call would
// send it. Useful for callers that flatten structured prompt values
// themselves and want to inspect or log the wire-format prompt.
func (l *LLM) ConvertPrompt(prompt string) (string, error) {
	return l.wrapPrompt(prompt)
}

// stopSequences appends the human turn marker to the caller's stop list so
// the model never invents a new Human/Assistant dialogue turn. Caller stops
// come first, the marker last; the input slice is not mutated.
func (l *LLM) stopSequences(stops []string) ([]string, error) {
	if err := l.checkMarkers(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(stops)+1)
	out = append(out, stops...)
	return append(out, l.humanPrompt), nil
}

// checkMarkers guards every use of the turn markers. New validates them too;
// the re-check keeps wrapping and stop building fail-fast on a zero-value
// LLM.
func (l *LLM) checkMarkers() error {
	if l.humanPrompt == "" || l.aiPrompt == "" {
		return &ConfigError{Field: "turn markers", Err: ErrMarkersUnresolved}
	}
	return nil
}
