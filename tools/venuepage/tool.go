package venuepage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"

	"github.com/bububa/adventure-agents/schema"
	"github.com/bububa/adventure-agents/tools"
)

// Input schema for the VenuePageTool.
type Input struct {
	schema.Base
	// URL of the venue or activity page to read.
	URL string `json:"url" jsonschema:"title=url,description=URL of the venue or activity page to read." validate:"required,url"`
}

func NewInput(link string) *Input {
	return &Input{URL: link}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Venue is structured venue information extracted from a page.
type Venue struct {
	// Name the venue name as presented by the page.
	Name string `json:"name,omitempty" jsonschema:"title=name,description=The venue name."`
	// Description the meta description of the page.
	Description string `json:"description,omitempty" jsonschema:"title=description,description=The page description."`
	// Address the postal address when the page marks one up.
	Address string `json:"address,omitempty" jsonschema:"title=address,description=The venue postal address."`
	// OpeningHours the opening hours when the page marks them up.
	OpeningHours string `json:"opening_hours,omitempty" jsonschema:"title=opening_hours,description=The venue opening hours."`
	// SiteName the name of the website.
	SiteName string `json:"site_name,omitempty" jsonschema:"title=site_name,description=The name of the website."`
	// Domain the domain name of the website.
	Domain string `json:"domain,omitempty" jsonschema:"title=domain,description=The domain name of the website."`
}

// Output schema for the output of the VenuePageTool.
type Output struct {
	schema.Base
	// Content the page main content in markdown format.
	Content string `json:"content,omitempty" jsonschema:"title=content,description=The page main content in markdown format."`
	// Venue structured venue information.
	Venue *Venue `json:"venue,omitempty" jsonschema:"title=venue,description=Structured venue information."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type Config struct {
	tools.Config
	// userAgent User agent string to use for requests.
	userAgent string
	// timeout Timeout in seconds for HTTP requests
	timeout    int
	httpClient *http.Client
}

// VenuePage reads a venue or activity web page and condenses it into
// markdown content plus structured venue information.
type VenuePage struct {
	Config
}

func New(opts ...Option) *VenuePage {
	ret := new(VenuePage)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("VenuePageTool")
	}
	if ret.userAgent == "" {
		ret.userAgent = DefaultUserAgent
	}
	if ret.timeout == 0 {
		ret.timeout = 30
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: time.Second * time.Duration(ret.timeout)}
	}
	return ret
}

// Run reads the page synchronously.
func (t *VenuePage) Run(ctx context.Context, input *Input) (*Output, error) {
	parsedURL, err := url.ParseRequestURI(input.URL)
	if err != nil {
		return nil, err
	}
	doc, err := t.fetch(ctx, input.URL)
	if err != nil {
		return nil, err
	}
	venue := new(Venue)
	venue.Domain = parsedURL.Host
	t.extractVenue(doc, venue)
	mainContent := t.extractMainContent(doc)
	markdown, err := htmltomarkdown.ConvertString(
		mainContent,
		converter.WithDomain(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)),
	)
	if err != nil {
		return nil, err
	}
	return &Output{
		Content: cleanMarkdownContent(markdown),
		Venue:   venue,
	}, nil
}

func (t *VenuePage) fetch(ctx context.Context, link string) (*goquery.Document, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	httpReq.Header.Set("Accept", DefaultAccept)
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from venue page: %d", httpResp.StatusCode)
	}
	return goquery.NewDocumentFromReader(httpResp.Body)
}

// extractVenue pulls venue information from meta tags and schema.org markup
func (t *VenuePage) extractVenue(doc *goquery.Document, venue *Venue) {
	venue.Name = strings.TrimSpace(doc.Find("head title").Text())
	if ogTitle, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && ogTitle != "" {
		venue.Name = ogTitle
	}
	venue.Description, _ = doc.Find("meta[name='description']").Attr("content")
	venue.SiteName, _ = doc.Find("meta[property='og:site_name']").Attr("content")
	if address := doc.Find("[itemprop='address']").First(); address.Length() > 0 {
		venue.Address = strings.Join(strings.Fields(address.Text()), " ")
	}
	if hours := doc.Find("[itemprop='openingHours']").First(); hours.Length() > 0 {
		venue.OpeningHours = strings.Join(strings.Fields(hours.Text()), " ")
		if content, ok := hours.Attr("content"); ok && venue.OpeningHours == "" {
			venue.OpeningHours = content
		}
	}
}

// extractMainContent extracts the main content from the page using selector heuristics
func (t *VenuePage) extractMainContent(doc *goquery.Document) string {
	for _, tag := range []string{"script", "style", "nav", "header", "footer"} {
		doc.Find(tag).Remove()
	}
	contentCandidates := []string{
		"main",
		"#content, #main",
		".content, .main",
		"article",
		"body",
	}
	var mainContent string
	for _, selector := range contentCandidates {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			if txt, err := sel.Html(); err == nil {
				mainContent = txt
				break
			}
		}
	}
	if mainContent == "" {
		mainContent, _ = doc.Html()
	}
	return mainContent
}

var blankLines = regexp.MustCompile(`\r?\n{2,}`)

// cleanMarkdownContent normalizes whitespace in the converted markdown
func cleanMarkdownContent(content string) string {
	content = blankLines.ReplaceAllString(content, "\n\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	content = strings.Join(lines, "\n")
	return strings.TrimSpace(content) + "\n"
}
