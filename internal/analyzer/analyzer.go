package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/review-checker/internal/platform"
	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/MichalMitros/review-checker/pkg/v1/reports"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Fetcher --filename fetcher.go
//go:generate mockery --name Extractor --filename extractor.go
//go:generate mockery --name Classifier --filename classifier.go
//go:generate mockery --name Notifier --filename notifier.go

const (
	// NoReviewsMessage is report message used when product has no reviews which could be analyzed.
	NoReviewsMessage = "Product info retrieved, but no reviews could be successfully parsed/mapped for analysis."

	notFoundMessage = "Could not scrape/parse product information or reviews."
	notFoundDetails = "Neither product page nor reviews page contained product title or reviews."
)

// Fetcher fetches html pages.
type Fetcher interface {
	// Fetch returns page html, ok is false when page couldn't be fetched.
	Fetch(ctx context.Context, url string) (page string, ok bool)
}

// Extractor extracts product data from html page.
type Extractor interface {
	Extract(html string) models.Product
}

// Classifier classifies reviews as real or fake.
type Classifier interface {
	// Classify returns classification of every review, in reviews order.
	Classify(ctx context.Context, productTitle string, reviews []models.MappedReview) ([]models.Classification, error)
}

// Notifier publishes analysis reports.
type Notifier interface {
	NotifyReport(ctx context.Context, event reports.ReportEvent) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Analyzer.
type Option func(a *Analyzer)

// Analyzer fetches product pages, extracts reviews and builds reviews authenticity report.
type Analyzer struct {
	fetcher        Fetcher
	extractor      Extractor
	classifier     Classifier
	notifier       Notifier
	marketplaceURL string
	clock          Clock
	logger         *zerolog.Logger
}

// NewAnalyzer returns new Analyzer.
func NewAnalyzer(
	fetcher Fetcher,
	extractor Extractor,
	classifier Classifier,
	logger *zerolog.Logger,
	ops ...Option,
) *Analyzer {
	an := &Analyzer{
		fetcher:        fetcher,
		extractor:      extractor,
		classifier:     classifier,
		marketplaceURL: DefaultMarketplaceURL,
		clock:          systemClock{},
		logger:         logger,
	}

	for _, op := range ops {
		op(an)
	}

	return an
}

// Analyze returns reviews authenticity report of product under productURL.
// Returned errors are *platform.Error of one of platform error kinds.
func (a *Analyzer) Analyze(ctx context.Context, productURL string) (*models.Report, error) {
	if productURL == "" {
		return nil, platform.NewError(platform.ErrInvalidInput, "No product_url provided", nil)
	}

	productID, ok := ExtractProductID(productURL)
	if !ok {
		return nil, platform.NewError(platform.ErrInvalidInput, "Could not extract product ID from URL", nil)
	}

	logger := a.logger.With().Str("productId", productID).Logger()

	productPage, reviewsPage, err := a.fetchProduct(ctx, productID)
	if err != nil {
		return nil, platform.NewError(platform.ErrUpstream, "can't fetch product pages", err)
	}

	rawReviews := reviewsPage.Reviews
	if len(rawReviews) == 0 && len(productPage.Reviews) > 0 {
		logger.Debug().Msg("using reviews found on product page")
		rawReviews = productPage.Reviews
	}

	reviews := mapReviews(rawReviews)

	report := &models.Report{
		ProductID:  productID,
		ProductURL: productURL,
		ProductInfo: models.ProductInfo{
			Title: lo.FromPtrOr(productPage.Name, models.NotAvailable),
			Price: lo.FromPtrOr(productPage.Price, models.NotAvailable),
		},
		ReviewReport: []models.ReviewReportEntry{},
	}

	logger.Debug().
		Int("rawReviews", len(rawReviews)).
		Int("reviews", len(reviews)).
		Str("title", report.ProductInfo.Title).
		Msg("product extracted")

	if len(reviews) == 0 {
		if report.ProductInfo.Title == models.NotAvailable {
			return nil, platform.NewError(platform.ErrNotFound, notFoundMessage, nil).WithDetails(notFoundDetails)
		}

		logger.Warn().Msg("product info retrieved, but no reviews found")
		report.Message = NoReviewsMessage

		return report, nil
	}

	classifications, err := a.classifier.Classify(ctx, report.ProductInfo.Title, reviews)
	if err != nil {
		logger.Error().
			Err(err).
			Int("reviews", len(reviews)).
			Msg("can't classify reviews")

		var platformErr *platform.Error
		if errors.As(err, &platformErr) {
			return nil, err
		}
		return nil, platform.NewError(platform.ErrUpstream, "can't classify reviews", err)
	}

	if len(classifications) != len(reviews) {
		return nil, platform.NewError(platform.ErrUpstream, "can't classify reviews",
			fmt.Errorf("%w: got %d classifications for %d reviews", ErrClassificationsMismatch, len(classifications), len(reviews)))
	}

	report.ReviewReport = lo.Map(reviews, func(r models.MappedReview, ix int) models.ReviewReportEntry {
		return models.ReviewReportEntry{
			Username:       r.Username,
			Timestamp:      r.Timestamp,
			Classification: classifications[ix],
		}
	})

	a.notify(ctx, &logger, report)

	return report, nil
}

// fetchProduct fetches and extracts product page and reviews page concurrently.
// Page which couldn't be fetched is returned as empty product.
func (a *Analyzer) fetchProduct(ctx context.Context, productID string) (models.Product, models.Product, error) {
	var productPage, reviewsPage models.Product

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		productPage = a.fetchPage(egCtx, ProductPageURL(a.marketplaceURL, productID))
		return egCtx.Err()
	})

	errGroup.Go(func() error {
		reviewsPage = a.fetchPage(egCtx, ReviewsPageURL(a.marketplaceURL, productID))
		return egCtx.Err()
	})

	err := errGroup.Wait()

	return productPage, reviewsPage, err
}

func (a *Analyzer) fetchPage(ctx context.Context, url string) models.Product {
	page, ok := a.fetcher.Fetch(ctx, url)
	if !ok {
		a.logger.Warn().
			Str("url", url).
			Msg("can't get page html")
		return models.Product{}
	}

	return a.extractor.Extract(page)
}

func (a *Analyzer) notify(ctx context.Context, logger *zerolog.Logger, report *models.Report) {
	if a.notifier == nil {
		return
	}

	if err := a.notifier.NotifyReport(ctx, toReportEvent(report, a.clock.Now())); err != nil {
		logger.Error().
			Err(err).
			Msg("can't notify about report")
	}
}

func toReportEvent(report *models.Report, analyzedAt time.Time) reports.ReportEvent {
	event := reports.ReportEvent{
		ProductID:  report.ProductID,
		ProductURL: report.ProductURL,
		AnalyzedAt: analyzedAt,
		Title:      report.ProductInfo.Title,
		Price:      report.ProductInfo.Price,
		Entries:    make([]reports.Entry, 0, len(report.ReviewReport)),
	}

	for _, entry := range report.ReviewReport {
		switch entry.Classification {
		case models.ClassificationReal:
			event.Counts.Real++
		case models.ClassificationFake:
			event.Counts.Fake++
		case models.ClassificationError:
			event.Counts.Error++
		case models.ClassificationNotAnalyzed:
			event.Counts.NotAnalyzed++
		}

		event.Entries = append(event.Entries, reports.Entry{
			Username:       entry.Username,
			Timestamp:      entry.Timestamp,
			Classification: string(entry.Classification),
		})
	}

	return event
}

// WithNotifier sets Notifier called after every successful classification.
func WithNotifier(n Notifier) Option {
	return func(a *Analyzer) {
		a.notifier = n
	}
}

// WithMarketplaceURL sets base url of fetched product pages.
func WithMarketplaceURL(url string) Option {
	return func(a *Analyzer) {
		if url != "" {
			a.marketplaceURL = url
		}
	}
}

// WithClock sets Analyzer's custom Clock.
func WithClock(c Clock) Option {
	return func(a *Analyzer) {
		a.clock = c
	}
}
