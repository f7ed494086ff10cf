package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/adventure-agents/tools/searxng"
	"github.com/bububa/adventure-agents/tools/venuepage"
)

const webSearchProviderTitle = "Web Search Results"

// maxVenueContentLen caps the condensed page content injected per venue
// so the system prompt stays within reasonable token bounds.
const maxVenueContentLen = 2000

// webSearchProvider carries pre-fetched search results into the system
// prompt as extra context.
type webSearchProvider struct {
	info string
}

func (p *webSearchProvider) Title() string {
	return webSearchProviderTitle
}

func (p *webSearchProvider) Info() string {
	return p.info
}

// webSearchContext runs the configured search tool and renders the hits
// as markdown. When a venue tool is configured, the top hits are
// enriched with condensed page content. Venue fetch failures only skip
// the enrichment.
func (c *Config) webSearchContext(ctx context.Context, queries []string) (*webSearchProvider, error) {
	output, err := c.searchTool.Run(ctx, searxng.NewInput(searxng.GeneralCategory, queries))
	if err != nil {
		return nil, err
	}
	if len(output.Results) == 0 {
		return nil, nil
	}
	var sb strings.Builder
	for _, item := range output.Results {
		fmt.Fprintf(&sb, "- [%s](%s): %s\n", item.Title, item.URL, item.Content)
	}
	if c.venueTool != nil {
		limit := c.venueLimit
		if limit <= 0 {
			limit = 2
		}
		if limit > len(output.Results) {
			limit = len(output.Results)
		}
		for _, item := range output.Results[:limit] {
			page, err := c.venueTool.Run(ctx, venuepage.NewInput(item.URL))
			if err != nil {
				continue
			}
			content := page.Content
			if len(content) > maxVenueContentLen {
				content = content[:maxVenueContentLen]
			}
			fmt.Fprintf(&sb, "\n### %s\n%s\n", item.Title, content)
		}
	}
	return &webSearchProvider{info: sb.String()}, nil
}
