package llm

import (
	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/bububa/adventure-agents/tools/searxng"
	"github.com/bububa/adventure-agents/tools/venuepage"
)

// Config holds the shared setup for the instructor-backed agents.
type Config struct {
	// client Client for interacting with the language model
	client instructor.Instructor
	// model llm model
	model string
	// temperature Temperature for response generation
	temperature float32
	// maxTokens Maximum number of tokens allowed in the response
	maxTokens int
	// searchTool optional web search used to ground the agent
	searchTool *searxng.SearxngSearch
	// venueTool optional page reader used to enrich search hits
	venueTool *venuepage.VenuePage
	// venueLimit max venue pages fetched per search, defaults to 2
	venueLimit int
}

type Option func(*Config)

func WithClient(clt instructor.Instructor) Option {
	return func(c *Config) {
		c.client = clt
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

// WithSearchTool grounds the agent with live web search results. The
// results are injected into the system prompt as extra context.
func WithSearchTool(tool *searxng.SearxngSearch) Option {
	return func(c *Config) {
		c.searchTool = tool
	}
}

// WithVenueTool enriches web search hits with condensed page content.
// Only used when a search tool is configured as well.
func WithVenueTool(tool *venuepage.VenuePage) Option {
	return func(c *Config) {
		c.venueTool = tool
	}
}

func WithVenuePageLimit(limit int) Option {
	return func(c *Config) {
		c.venueLimit = limit
	}
}
