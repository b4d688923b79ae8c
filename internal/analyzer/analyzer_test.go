package analyzer_test

import (
	"context"
	"testing"
	"time"

	"github.com/MichalMitros/review-checker/internal/analyzer"
	"github.com/MichalMitros/review-checker/internal/analyzer/mocks"
	"github.com/MichalMitros/review-checker/internal/platform"
	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/MichalMitros/review-checker/internal/platform/models/modelstesting"
	"github.com/MichalMitros/review-checker/pkg/v1/reports"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reusable test data
const (
	productID   = "B0BFBV4JKK"
	productURL  = "https://www.amazon.in/CartaDen-Wooden-Serving/dp/B0BFBV4JKK/?th=1"
	productHTML = "<html>product</html>"
	reviewsHTML = "<html>reviews</html>"
)

var (
	productPageURL = analyzer.ProductPageURL(analyzer.DefaultMarketplaceURL, productID)
	reviewsPageURL = analyzer.ReviewsPageURL(analyzer.DefaultMarketplaceURL, productID)
	now            = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

func TestUnitAnalyze(t *testing.T) {
	productPage := modelstesting.FakeProduct()
	reviewsPage := models.Product{
		Reviews: []models.Review{
			modelstesting.FakeReview(),
			modelstesting.FakeReview(func(r *models.Review) { r.Rating = nil }),
			modelstesting.FakeReview(),
			modelstesting.FakeReview(func(r *models.Review) { r.Text = lo.ToPtr("") }),
			modelstesting.FakeReview(func(r *models.Review) { r.ReviewerName = nil }),
		},
	}
	wantReviews := []models.MappedReview{
		analyzer.MapReview(reviewsPage.Reviews[0]),
		analyzer.MapReview(reviewsPage.Reviews[2]),
	}
	classifications := []models.Classification{models.ClassificationReal, models.ClassificationFake}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)
	notifier := mocks.NewNotifier(t)

	mockPages(fetcher, extractor, &productPage, &reviewsPage)
	classifier.On("Classify", mock.Anything, *productPage.Name, wantReviews).Return(classifications, nil).Once()
	notifier.On("NotifyReport", mock.Anything, reports.ReportEvent{
		ProductID:  productID,
		ProductURL: productURL,
		AnalyzedAt: now,
		Title:      *productPage.Name,
		Price:      *productPage.Price,
		Counts:     reports.Counts{Real: 1, Fake: 1},
		Entries: []reports.Entry{
			{Username: wantReviews[0].Username, Timestamp: wantReviews[0].Timestamp, Classification: "real"},
			{Username: wantReviews[1].Username, Timestamp: wantReviews[1].Timestamp, Classification: "fake"},
		},
	}).Return(nil).Once()

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger(),
		analyzer.WithNotifier(notifier),
		analyzer.WithClock(fakeClock{now: now}),
	)

	report, err := an.Analyze(context.TODO(), productURL)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &models.Report{
		ProductID:  productID,
		ProductURL: productURL,
		ProductInfo: models.ProductInfo{
			Title: *productPage.Name,
			Price: *productPage.Price,
		},
		ReviewReport: []models.ReviewReportEntry{
			{Username: wantReviews[0].Username, Timestamp: wantReviews[0].Timestamp, Classification: models.ClassificationReal},
			{Username: wantReviews[1].Username, Timestamp: wantReviews[1].Timestamp, Classification: models.ClassificationFake},
		},
	}, report, "should return valid report")
}

func TestUnitAnalyzeProductPageReviews(t *testing.T) {
	productPage := modelstesting.FakeProduct()
	reviewsPage := models.Product{}
	wantReviews := lo.Map(productPage.Reviews, func(r models.Review, _ int) models.MappedReview {
		return analyzer.MapReview(r)
	})
	classifications := lo.Map(wantReviews, func(models.MappedReview, int) models.Classification {
		return models.ClassificationReal
	})

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)

	mockPages(fetcher, extractor, &productPage, &reviewsPage)
	classifier.On("Classify", mock.Anything, *productPage.Name, wantReviews).Return(classifications, nil).Once()

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger())

	report, err := an.Analyze(context.TODO(), productURL)

	require.NoError(t, err, "shouldn't return any error")
	assert.Len(t, report.ReviewReport, len(productPage.Reviews), "should use reviews from product page")
}

func TestUnitAnalyzeReviewsPageOnly(t *testing.T) {
	reviewsPage := models.Product{Reviews: modelstesting.FakeReviews(3)}
	classifications := []models.Classification{
		models.ClassificationReal,
		models.ClassificationError,
		models.ClassificationNotAnalyzed,
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)

	mockPages(fetcher, extractor, nil, &reviewsPage)
	classifier.On("Classify", mock.Anything, models.NotAvailable, mock.Anything).Return(classifications, nil).Once()

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger())

	report, err := an.Analyze(context.TODO(), productURL)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, models.ProductInfo{Title: models.NotAvailable, Price: models.NotAvailable}, report.ProductInfo,
		"should use placeholders for product info")
	assert.Equal(t, classifications, lo.Map(report.ReviewReport, func(e models.ReviewReportEntry, _ int) models.Classification {
		return e.Classification
	}), "should keep classifications order")
}

func TestUnitAnalyzeNoReviews(t *testing.T) {
	productPage := modelstesting.FakeProduct(func(p *models.Product) { p.Reviews = nil })
	reviewsPage := models.Product{
		Reviews: []models.Review{modelstesting.FakeReview(func(r *models.Review) { r.Rating = nil })},
	}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)
	notifier := mocks.NewNotifier(t)

	mockPages(fetcher, extractor, &productPage, &reviewsPage)

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger(), analyzer.WithNotifier(notifier))

	report, err := an.Analyze(context.TODO(), productURL)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, *productPage.Name, report.ProductInfo.Title, "should return product title")
	assert.Empty(t, report.ReviewReport, "should return empty review report")
	assert.NotNil(t, report.ReviewReport, "should return non-nil review report")
	assert.Equal(t, analyzer.NoReviewsMessage, report.Message, "should return message about missing reviews")
	classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyReport", mock.Anything, mock.Anything)
}

func TestUnitAnalyzeNotFound(t *testing.T) {
	tests := map[string]struct {
		productPage *models.Product
		reviewsPage *models.Product
	}{
		"pages not fetched": {},
		"nothing extracted": {
			productPage: &models.Product{},
			reviewsPage: &models.Product{},
		},
		"reviews without required fields": {
			productPage: &models.Product{Price: lo.ToPtr("₹499.00")},
			reviewsPage: &models.Product{Reviews: []models.Review{
				modelstesting.FakeReview(func(r *models.Review) { r.Text = nil }),
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := mocks.NewFetcher(t)
			extractor := mocks.NewExtractor(t)
			classifier := mocks.NewClassifier(t)

			mockPages(fetcher, extractor, tt.productPage, tt.reviewsPage)

			an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger())

			report, err := an.Analyze(context.TODO(), productURL)

			require.Nil(t, report, "shouldn't return report")
			require.ErrorIs(t, err, platform.ErrNotFound, "should return not found error")

			var platformErr *platform.Error
			require.ErrorAs(t, err, &platformErr, "should return platform error")
			assert.Equal(t, "Could not scrape/parse product information or reviews.", platformErr.Message,
				"should return valid error message")
			assert.NotEmpty(t, platformErr.Details, "should return error details")
		})
	}
}

func TestUnitAnalyzeInvalidInput(t *testing.T) {
	tests := map[string]struct {
		url         string
		wantMessage string
	}{
		"empty url": {
			wantMessage: "No product_url provided",
		},
		"url without product ID": {
			url:         "https://www.amazon.in/s?k=earbuds",
			wantMessage: "Could not extract product ID from URL",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := mocks.NewFetcher(t)
			extractor := mocks.NewExtractor(t)
			classifier := mocks.NewClassifier(t)

			an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger())

			_, err := an.Analyze(context.TODO(), tt.url)

			require.ErrorIs(t, err, platform.ErrInvalidInput, "should return invalid input error")
			require.EqualError(t, err, tt.wantMessage, "should return valid error message")
			fetcher.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
		})
	}
}

func TestUnitAnalyzeClassifierError(t *testing.T) {
	tests := map[string]struct {
		classifierErr error
		wantMessage   string
	}{
		"platform error": {
			classifierErr: platform.NewError(platform.ErrUpstream, "model API request failed", assert.AnError),
			wantMessage:   "model API request failed",
		},
		"other error": {
			classifierErr: assert.AnError,
			wantMessage:   "can't classify reviews",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			productPage := modelstesting.FakeProduct()
			reviewsPage := models.Product{Reviews: modelstesting.FakeReviews(2)}

			fetcher := mocks.NewFetcher(t)
			extractor := mocks.NewExtractor(t)
			classifier := mocks.NewClassifier(t)
			notifier := mocks.NewNotifier(t)

			mockPages(fetcher, extractor, &productPage, &reviewsPage)
			classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.classifierErr).Once()

			an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger(), analyzer.WithNotifier(notifier))

			report, err := an.Analyze(context.TODO(), productURL)

			require.Nil(t, report, "shouldn't return partial report")
			require.ErrorIs(t, err, platform.ErrUpstream, "should return upstream error")
			require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
			require.ErrorContains(t, err, tt.wantMessage, "should return valid error message")
			notifier.AssertNotCalled(t, "NotifyReport", mock.Anything, mock.Anything)
		})
	}
}

func TestUnitAnalyzeClassificationsMismatch(t *testing.T) {
	productPage := modelstesting.FakeProduct()
	reviewsPage := models.Product{Reviews: modelstesting.FakeReviews(2)}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)

	mockPages(fetcher, extractor, &productPage, &reviewsPage)
	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Classification{models.ClassificationReal}, nil).
		Once()

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger())

	_, err := an.Analyze(context.TODO(), productURL)

	require.ErrorIs(t, err, platform.ErrUpstream, "should return upstream error")
	require.ErrorIs(t, err, analyzer.ErrClassificationsMismatch, "should return error about classifications mismatch")
}

func TestUnitAnalyzeNotifierError(t *testing.T) {
	productPage := modelstesting.FakeProduct()
	reviewsPage := models.Product{Reviews: modelstesting.FakeReviews(1)}

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)
	notifier := mocks.NewNotifier(t)

	mockPages(fetcher, extractor, &productPage, &reviewsPage)
	classifier.On("Classify", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.Classification{models.ClassificationFake}, nil).
		Once()
	notifier.On("NotifyReport", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger(), analyzer.WithNotifier(notifier))

	report, err := an.Analyze(context.TODO(), productURL)

	require.NoError(t, err, "shouldn't return notification error")
	assert.Len(t, report.ReviewReport, 1, "should return complete report")
}

func TestUnitAnalyzeMarketplaceURL(t *testing.T) {
	marketplaceURL := "http://127.0.0.1:8080"

	fetcher := mocks.NewFetcher(t)
	extractor := mocks.NewExtractor(t)
	classifier := mocks.NewClassifier(t)

	fetcher.On("Fetch", mock.Anything, marketplaceURL+"/dp/"+productID).Return("", false).Once()
	fetcher.On("Fetch", mock.Anything, analyzer.ReviewsPageURL(marketplaceURL, productID)).Return("", false).Once()

	an := analyzer.NewAnalyzer(fetcher, extractor, classifier, nopLogger(), analyzer.WithMarketplaceURL(marketplaceURL))

	_, err := an.Analyze(context.TODO(), productURL)

	require.ErrorIs(t, err, platform.ErrNotFound, "should return not found error")
}

// mockPages mocks fetching and extracting both pages, nil page is not fetched.
func mockPages(fetcher *mocks.Fetcher, extractor *mocks.Extractor, productPage, reviewsPage *models.Product) {
	mockPage(fetcher, extractor, productPageURL, productHTML, productPage)
	mockPage(fetcher, extractor, reviewsPageURL, reviewsHTML, reviewsPage)
}

func mockPage(fetcher *mocks.Fetcher, extractor *mocks.Extractor, url, html string, page *models.Product) {
	if page == nil {
		fetcher.On("Fetch", mock.Anything, url).Return("", false).Once()
		return
	}

	fetcher.On("Fetch", mock.Anything, url).Return(html, true).Once()
	extractor.On("Extract", html).Return(*page).Once()
}

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
