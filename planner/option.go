package planner

import (
	"time"

	"github.com/bububa/adventure-agents/advisory"
	"github.com/bububa/adventure-agents/components"
	"github.com/bububa/adventure-agents/weather"
)

type Option func(*Config)

// WithName sets the planner name carried by workflow events.
func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}

// WithWeatherProvider sets the weather capability. Without one, every
// run uses the local fallback analysis.
func WithWeatherProvider(provider weather.Provider) Option {
	return func(c *Config) {
		c.provider = provider
	}
}

// WithSearcher sets the general activity discovery capability.
func WithSearcher(searcher advisory.Searcher) Option {
	return func(c *Config) {
		c.searcher = searcher
	}
}

// WithKidSearcher sets the kid-oriented discovery capability used when
// the group includes children.
func WithKidSearcher(searcher advisory.Searcher) Option {
	return func(c *Config) {
		c.kidSearcher = searcher
	}
}

// WithSynthesizer sets the plan synthesis capability.
func WithSynthesizer(synthesizer advisory.Synthesizer) Option {
	return func(c *Config) {
		c.synthesizer = synthesizer
	}
}

// WithObserver sets the event sink for workflow visibility.
func WithObserver(observer components.Observer) Option {
	return func(c *Config) {
		c.observer = observer
	}
}

// WithCallTimeout bounds each external capability call. Zero keeps the
// default; negative disables the bound.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.callTimeout = timeout
	}
}
