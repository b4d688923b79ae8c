package extractor

import (
	"strings"

	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	productNameSelector   = "#productTitle"
	priceSymbolSelector   = ".a-price-symbol"
	priceWholeSelector    = ".a-price-whole"
	priceFractionSelector = ".a-price-fraction"
	ratingSelector        = "#acrPopover"
	ratingsCountSelector  = "#acrCustomerReviewText"
	featuresSelector      = "#feature-bullets ul li"
	descriptionSelector   = "#productDescription"
	// reviews are listed in different containers on product page and on reviews page.
	reviewsSelector = "#cm-cr-dp-review-list .review, #cm_cr-review_list .review"

	reviewerNameSelector = ".a-profile-name"
	reviewRatingSelector = "i.review-rating"
	reviewTitleSelector  = ".review-title"
	reviewTextSelector   = ".review-text"
	reviewDateSelector   = ".review-date"
	reviewStateSelector  = ".a-color-state"
)

// Extractor extracts product data from html pages.
type Extractor struct {
	logger *zerolog.Logger
}

// NewExtractor returns new Extractor.
func NewExtractor(logger *zerolog.Logger) *Extractor {
	return &Extractor{
		logger: logger,
	}
}

// Extract returns product data found in html page.
// Every field is extracted separately, field which can't be extracted is left empty.
func (e *Extractor) Extract(html string) models.Product {
	var product models.Product

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		e.logger.Error().
			Err(err).
			Msg("can't parse html")
		return product
	}

	e.extractField("product name", func() {
		product.Name = selectText(doc.Selection, productNameSelector)
	})

	e.extractField("price", func() {
		product.Price = selectPrice(doc.Selection)
	})

	e.extractField("rating", func() {
		if rating, exists := doc.Find(ratingSelector).First().Attr("title"); exists {
			product.AverageRating = lo.ToPtr(rating)
		}
		product.TotalRatingsCount = selectText(doc.Selection, ratingsCountSelector)
	})

	e.extractField("features", func() {
		features := doc.Find(featuresSelector).Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		})
		if len(features) > 0 {
			product.Features = features
		}
	})

	e.extractField("description", func() {
		product.Description = selectText(doc.Selection, descriptionSelector)
	})

	e.extractField("reviews", func() {
		doc.Find(reviewsSelector).Each(func(_ int, s *goquery.Selection) {
			product.Reviews = append(product.Reviews, e.extractReview(s))
		})
	})

	return product
}

// extractReview extracts single review from review container.
func (e *Extractor) extractReview(s *goquery.Selection) models.Review {
	var review models.Review

	e.extractField("reviewer name", func() {
		review.ReviewerName = selectText(s, reviewerNameSelector)
	})
	e.extractField("review rating", func() {
		review.Rating = selectText(s, reviewRatingSelector)
	})
	e.extractField("review title", func() {
		review.Title = selectText(s, reviewTitleSelector)
	})
	e.extractField("review text", func() {
		review.Text = selectText(s, reviewTextSelector)
	})
	e.extractField("review date", func() {
		review.Date = selectText(s, reviewDateSelector)
	})
	e.extractField("verified purchase", func() {
		state := s.Find(reviewStateSelector).First()
		review.IsVerifiedPurchase = state.Length() > 0 &&
			strings.Contains(strings.ToLower(state.Text()), "verified")
	})

	return review
}

// extractField runs extract and logs its failure instead of propagating it.
func (e *Extractor) extractField(field string, extract func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("field", field).
				Interface("panic", r).
				Msg("can't extract field")
		}
	}()

	extract()
}

// selectPrice returns price built from currency symbol, whole and fraction parts.
// It returns nil if any of the parts is missing.
func selectPrice(s *goquery.Selection) *string {
	symbol := s.Find(priceSymbolSelector).First()
	whole := s.Find(priceWholeSelector).First()
	fraction := s.Find(priceFractionSelector).First()

	if symbol.Length() == 0 || whole.Length() == 0 || fraction.Length() == 0 {
		return nil
	}

	return lo.ToPtr(symbol.Text() + whole.Text() + fraction.Text())
}

// selectText returns trimmed text of first element matching selector or nil if there is no such element.
func selectText(s *goquery.Selection, selector string) *string {
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil
	}

	return lo.ToPtr(strings.TrimSpace(found.Text()))
}
