package extractor

import (
	"fmt"
	"strings"

	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/samber/lo"
)

// FormatText renders product data as human readable text.
func FormatText(product models.Product) string {
	var lines []string

	appendField := func(label string, value *string) {
		if lo.FromPtr(value) != "" {
			lines = append(lines, label+": "+*value)
		}
	}

	appendField("PRODUCT NAME", product.Name)
	appendField("PRICE", product.Price)
	appendField("RATING", product.AverageRating)
	appendField("TOTAL RATINGS", product.TotalRatingsCount)

	if len(product.Features) > 0 {
		lines = append(lines, "\nFEATURES:")
		for ix, feature := range product.Features {
			lines = append(lines, fmt.Sprintf("%d. %s", ix+1, feature))
		}
	}

	if lo.FromPtr(product.Description) != "" {
		lines = append(lines, "\nDESCRIPTION:", *product.Description)
	}

	if len(product.Reviews) > 0 {
		lines = append(lines, "\nREVIEWS:")
		for ix, review := range product.Reviews {
			lines = append(lines, fmt.Sprintf("\nReview #%d:", ix+1))
			appendField("Reviewer", review.ReviewerName)
			appendField("Rating", review.Rating)
			appendField("Date", review.Date)
			appendField("Title", review.Title)
			appendField("Review", review.Text)
			lines = append(lines, "Verified Purchase: "+lo.Ternary(review.IsVerifiedPurchase, "Yes", "No"))
		}
	}

	if len(lines) == 0 {
		return "No product data could be extracted."
	}

	return strings.Join(lines, "\n")
}
