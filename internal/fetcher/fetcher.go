package fetcher

import (
	"compress/gzip"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// DefaultUserAgent is desktop browser user agent used for direct page requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/94.0.4606.81 Safari/537.36"

// Fetcher fetches pages directly via http, pretending to be a web browser.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher returns new Fetcher. Empty userAgent is replaced with DefaultUserAgent.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Fetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// Name returns name of the source.
func (f *Fetcher) Name() string {
	return "direct"
}

// FetchPage returns html of page under provided url or error.
// Only responses with status 200 OK are accepted.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Add("User-Agent", f.userAgent)
	req.Header.Add("Accept-Language", "en-US,en;q=0.9")
	req.Header.Add("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Add("Accept-Encoding", "gzip, deflate, br")
	req.Header.Add("Connection", "keep-alive")
	req.Header.Add("Upgrade-Insecure-Requests", "1")
	req.Header.Add("DNT", "1")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: got %d", ErrStatusNotOK, resp.StatusCode)
	}

	body, err := decompressResponse(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", err
	}
	defer body.Close()

	page, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("can't read response body: %w", err)
	}

	return string(page), nil
}

// decompressResponse returns io.ReadCloser with response decoded according to its content encoding.
func decompressResponse(response io.ReadCloser, encoding string) (io.ReadCloser, error) {
	var (
		decompressed io.Reader
		err          error
	)

	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return response, nil
	case "gzip", "x-gzip":
		decompressed, err = gzip.NewReader(response)
	case "deflate":
		decompressed, err = zlib.NewReader(response)
	case "br":
		decompressed = brotli.NewReader(response)
	default:
		return nil, fmt.Errorf("%w: %s", ErrContentEncodingNotSupported, encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("can't decompress response: %w", err)
	}

	return &decompressedReadCloser{
		compressed:   response,
		decompressed: decompressed,
	}, nil
}

// decompressedReadCloser wraps decompressed Reader and compressed ReadCloser.
// It reads from decompressed Reader, but closes compressed ReadCloser.
type decompressedReadCloser struct {
	compressed   io.ReadCloser
	decompressed io.Reader
}

// Read reads uncompressed bytes from underlying Reader into p.
// Returns number of read bytes and error.
func (r decompressedReadCloser) Read(p []byte) (n int, err error) {
	return r.decompressed.Read(p)
}

// Close closes underlying compressed ReadCloser.
func (r decompressedReadCloser) Close() error {
	return r.compressed.Close()
}
