package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultFirecrawlURL is base url of Firecrawl API.
const DefaultFirecrawlURL = "https://api.firecrawl.dev"

// Firecrawl fetches pages using Firecrawl crawling service.
type Firecrawl struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewFirecrawl returns new Firecrawl.
func NewFirecrawl(client *http.Client, baseURL, apiKey string) *Firecrawl {
	return &Firecrawl{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		HTML    string `json:"html"`
		RawHTML string `json:"rawHtml"`
	} `json:"data"`
}

// Name returns name of the source.
func (f *Firecrawl) Name() string {
	return "firecrawl"
}

// FetchPage asks Firecrawl to scrape page under provided url and returns its html or error.
func (f *Firecrawl) FetchPage(ctx context.Context, url string) (string, error) {
	payload, err := json.Marshal(scrapeRequest{
		URL:     url,
		Formats: []string{"html"},
	})
	if err != nil {
		return "", fmt.Errorf("can't marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/scrape", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+f.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	var scraped scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&scraped); err != nil {
		return "", fmt.Errorf("can't decode scrape response: %w", err)
	}

	if !scraped.Success {
		return "", fmt.Errorf("%w: %s", ErrScrapeFailed, scraped.Error)
	}

	switch {
	case scraped.Data.HTML != "":
		return scraped.Data.HTML, nil
	case scraped.Data.RawHTML != "":
		return scraped.Data.RawHTML, nil
	default:
		return "", ErrEmptyPage
	}
}
