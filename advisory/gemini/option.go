// Package gemini implements the advisory capabilities on Google's
// Gemini models with JSON-mode structured output. The caller injects a
// configured genai client.
package gemini

type Config struct {
	// model the Gemini model name, e.g. "gemini-1.5-flash"
	model string
	// temperature response generation temperature
	temperature float32
}

const DefaultModel = "gemini-1.5-flash"

type Option func(*Config)

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
