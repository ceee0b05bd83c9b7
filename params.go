package claudetext

import "maps"

// Request parameter keys managed by named configuration fields. Extra
// parameters must not set these; per-call overrides may, as the highest
// priority tier.
var reservedParamKeys = []string{
	"model",
	"max_tokens_to_sample",
	"temperature",
	"top_k",
	"top_p",
}

// resolveParams flattens static configuration, extra parameters, and
// per-call overrides into one request parameter map, in ascending priority.
// Optional sampling fields appear only when configured. Unknown keys pass
// through untouched; the transport layer decides how to send them.
func (l *LLM) resolveParams(overrides map[string]any) map[string]any {
	params := map[string]any{
		"model":                l.model,
		"max_tokens_to_sample": l.maxTokensToSample,
	}
	if l.temperature != nil {
		params["temperature"] = *l.temperature
	}
	if l.topK != nil {
		params["top_k"] = *l.topK
	}
	if l.topP != nil {
		params["top_p"] = *l.topP
	}
	maps.Copy(params, l.extraParams)
	maps.Copy(params, overrides)
	return params
}

// IdentifyingParams returns the resolved default parameters of this adapter,
// without per-call overrides. The map is a fresh copy on every call; callers
// may use it as a cache or log key.
func (l *LLM) IdentifyingParams() map[string]any {
	return l.resolveParams(nil)
}

// stripReservedExtraParams enforces that extra parameters never shadow named
// configuration fields. The input map is cloned so caller mutations after
// construction have no effect.
func (l *LLM) stripReservedExtraParams() {
	if l.extraParams == nil {
		return
	}
	l.extraParams = maps.Clone(l.extraParams)
	for _, key := range reservedParamKeys {
		if _, ok := l.extraParams[key]; ok {
			l.logger.Warn("claudetext: extra parameter collides with a named option and was dropped", "key", key)
			delete(l.extraParams, key)
		}
	}
}
