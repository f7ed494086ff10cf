package searxng

import "net/http"

type Option func(*Config)

// WithBaseURL points the tool at a SearxNG instance, e.g.
// "http://localhost:8080".
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.baseURL = baseURL
	}
}

// WithLanguage sets the search language code passed to SearxNG.
func WithLanguage(lang string) Option {
	return func(c *Config) {
		c.language = lang
	}
}

// WithMaxResults caps the number of results returned per search.
func WithMaxResults(n int) Option {
	return func(c *Config) {
		c.maxResults = n
	}
}

// WithHttpClient replaces the default HTTP client.
func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}
