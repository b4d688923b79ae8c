package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MichalMitros/review-checker/internal/extractor"
	"github.com/MichalMitros/review-checker/internal/fetcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrPageNotFetched is returned when no page source returned product page.
var ErrPageNotFetched = errors.New("page couldn't be fetched")

// Config holds scrape command configuration.
type Config struct {
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"60s"`
	UserAgent       string        `env:"USER_AGENT"`
	FirecrawlAPIKey string        `env:"FIRECRAWL_API_KEY"`
	FirecrawlURL    string        `env:"FIRECRAWL_URL" envDefault:"https://api.firecrawl.dev"`
}

// NewCommand returns command scraping single product page. Flags default to cfg values.
func NewCommand(cfg Config, logger *zerolog.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scrape <product-url>",
		Short: "Scrape product page and print extracted product data",
		Long: `Fetches product page, extracts product details and reviews and writes them as plain text.

Example:
  scrape "https://www.amazon.in/dp/B0BFBV4JKK" --output product.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

			sources := make([]fetcher.Source, 0, 2)
			if cfg.FirecrawlAPIKey != "" {
				sources = append(sources, fetcher.NewFirecrawl(httpClient, cfg.FirecrawlURL, cfg.FirecrawlAPIKey))
			}
			sources = append(sources, fetcher.NewFetcher(httpClient, cfg.UserAgent))

			page, ok := fetcher.NewChain(logger, sources...).Fetch(cmd.Context(), args[0])
			if !ok {
				return fmt.Errorf("can't scrape %s: %w", args[0], ErrPageNotFetched)
			}

			text := extractor.FormatText(extractor.NewExtractor(logger).Extract(page)) + "\n"

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}

			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return fmt.Errorf("can't write output file: %w", err)
			}

			logger.Info().
				Str("output", output).
				Msg("product data saved")

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&cfg.FirecrawlAPIKey, "firecrawl-key", cfg.FirecrawlAPIKey, "Firecrawl API key, direct requests only when empty")
	cmd.Flags().StringVar(&cfg.FirecrawlURL, "firecrawl-url", cfg.FirecrawlURL, "Firecrawl API url")
	cmd.Flags().StringVar(&cfg.UserAgent, "user-agent", cfg.UserAgent, "User agent of direct requests")
	cmd.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP requests timeout")

	return cmd
}
