package analyzer

import (
	"regexp"
	"strings"

	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/samber/lo"
)

var (
	reviewDateRegexp   = regexp.MustCompile(`on\s+(.*)`)
	reviewRatingRegexp = regexp.MustCompile(`^(\d+\.?\d*)`)
)

// MapReview normalizes raw review.
// Timestamp is text following "on " in review date, rating is its leading number.
// Both fall back to raw value when pattern doesn't match and to "N/A" when value is missing.
func MapReview(review models.Review) models.MappedReview {
	mapped := models.MappedReview{
		Username:   lo.FromPtrOr(review.ReviewerName, models.NotAvailable),
		Timestamp:  models.NotAvailable,
		Rating:     models.NotAvailable,
		ReviewText: lo.FromPtr(review.Text),
	}

	if date := lo.FromPtrOr(review.Date, models.NotAvailable); date != models.NotAvailable {
		mapped.Timestamp = date
		if match := reviewDateRegexp.FindStringSubmatch(date); match != nil {
			mapped.Timestamp = strings.TrimSpace(match[1])
		}
	}

	if rating := lo.FromPtrOr(review.Rating, models.NotAvailable); rating != models.NotAvailable {
		mapped.Rating = rating
		if match := reviewRatingRegexp.FindStringSubmatch(rating); match != nil {
			mapped.Rating = match[1]
		}
	}

	return mapped
}

// IsAnalyzable returns true when review has username, rating and text.
func IsAnalyzable(review models.MappedReview) bool {
	return review.Username != models.NotAvailable &&
		review.Rating != models.NotAvailable &&
		review.ReviewText != ""
}

// mapReviews returns mapped reviews which can be analyzed, in input order.
func mapReviews(reviews []models.Review) []models.MappedReview {
	return lo.Filter(
		lo.Map(reviews, func(r models.Review, _ int) models.MappedReview { return MapReview(r) }),
		func(r models.MappedReview, _ int) bool { return IsAnalyzable(r) },
	)
}
