package claudetext

// CallOption adjusts a single call. Calls are independent: options applied
// to one request never leak into another.
type CallOption func(*callConfig)

type callConfig struct {
	stops     []string
	overrides map[string]any
	observer  Observer
}

func newCallConfig(opts []CallOption) callConfig {
	var cc callConfig
	for _, opt := range opts {
		opt(&cc)
	}
	return cc
}

// WithStopSequences sets caller stop sequences for this call. The human turn
// marker is always appended after them, exactly once.
func WithStopSequences(stops ...string) CallOption {
	return func(cc *callConfig) { cc.stops = stops }
}

// WithOverrides merges request parameters for this call at the highest
// priority, above named configuration and extra parameters. Keys unknown to
// the adapter are forwarded to the provider verbatim.
func WithOverrides(params map[string]any) CallOption {
	return func(cc *callConfig) { cc.overrides = params }
}

// WithObserver registers an observer notified once per streamed chunk,
// before the chunk reaches the consumer. It has no effect on non-streaming
// calls.
func WithObserver(obs Observer) CallOption {
	return func(cc *callConfig) { cc.observer = obs }
}
