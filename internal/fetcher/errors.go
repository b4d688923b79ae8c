package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status differen than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrContentEncodingNotSupported is returned when response content encoding is not supported.
	ErrContentEncodingNotSupported = errors.New("response content encoding not supported")
	// ErrScrapeFailed is returned when crawling service reports unsuccessful scrape.
	ErrScrapeFailed = errors.New("crawling service couldn't scrape page")
	// ErrEmptyPage is returned when page was fetched but has no content.
	ErrEmptyPage = errors.New("page has no content")
)
