package extractor_test

import (
	"testing"

	"github.com/MichalMitros/review-checker/internal/extractor"
	"github.com/MichalMitros/review-checker/internal/extractor/testdata"
	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestUnitFormatText(t *testing.T) {
	wantText := `PRODUCT NAME: CartaDen Wooden Serving Tray for Breakfast
PRICE: ₹499.00
RATING: 4.3 out of 5 stars
TOTAL RATINGS: 1,287 ratings

FEATURES:
1. Made of mango wood
2. Handles on both sides

DESCRIPTION:
Serve breakfast in bed.

REVIEWS:

Review #1:
Reviewer: Asha
Rating: 5.0 out of 5 stars
Date: Reviewed in India on 12 March 2024
Title: Lovely tray
Review: Sturdy and well finished.
Verified Purchase: Yes

Review #2:
Reviewer: Ravi
Date: Reviewed in India on 2 April 2024
Title: Ok
Review: Smaller than expected.
Verified Purchase: No`

	assert.Equal(t, wantText, extractor.FormatText(testdata.ProductPageProduct), "should format all product data")
}

func TestUnitFormatTextEmpty(t *testing.T) {
	tests := map[string]models.Product{
		"no fields":    {},
		"empty fields": {Name: lo.ToPtr(""), Description: lo.ToPtr("")},
	}

	for name, product := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "No product data could be extracted.", extractor.FormatText(product))
		})
	}
}
