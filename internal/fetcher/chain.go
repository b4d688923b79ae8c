package fetcher

import (
	"context"

	"github.com/rs/zerolog"
)

//go:generate mockery --name Source --filename source.go

// Source fetches html pages.
type Source interface {
	// Name returns source name used in logs.
	Name() string
	// FetchPage returns html of page under url.
	FetchPage(ctx context.Context, url string) (string, error)
}

// Chain fetches pages from ordered list of sources.
type Chain struct {
	sources []Source
	logger  *zerolog.Logger
}

// NewChain returns new Chain trying sources in provided order.
func NewChain(logger *zerolog.Logger, sources ...Source) *Chain {
	return &Chain{
		sources: sources,
		logger:  logger,
	}
}

// Fetch returns html of page from the first source which returned non-empty page.
// Source failures are logged and never returned, ok is false when every source failed.
func (c *Chain) Fetch(ctx context.Context, url string) (string, bool) {
	for _, src := range c.sources {
		page, err := src.FetchPage(ctx, url)
		if err == nil && page == "" {
			err = ErrEmptyPage
		}
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("source", src.Name()).
				Str("url", url).
				Msg("can't fetch page")
			continue
		}

		c.logger.Debug().
			Str("source", src.Name()).
			Str("url", url).
			Int("size", len(page)).
			Msg("page fetched")

		return page, true
	}

	return "", false
}
