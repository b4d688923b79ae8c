package models

// NotAvailable is the placeholder used for values missing from scraped pages.
const NotAvailable = "N/A"

// Classification is a verdict about review authenticity.
type Classification string

const (
	// ClassificationReal marks review judged as genuine.
	ClassificationReal Classification = "real"
	// ClassificationFake marks review judged as fake.
	ClassificationFake Classification = "fake"
	// ClassificationError marks review for which model output was missing or malformed.
	ClassificationError Classification = "error"
	// ClassificationNotAnalyzed marks review which was not sent to the model.
	ClassificationNotAnalyzed Classification = "not_analyzed"
)

// IsVerdict returns true for classifications the model is allowed to return.
func (c Classification) IsVerdict() bool {
	return c == ClassificationReal || c == ClassificationFake
}

// Product is product data scraped from a product or reviews page.
// Nil fields were not found in the page.
type Product struct {
	Name              *string
	Price             *string
	AverageRating     *string
	TotalRatingsCount *string
	Features          []string
	Description       *string
	Reviews           []Review
}

// Review is raw customer review scraped from a page.
type Review struct {
	ReviewerName       *string
	Rating             *string
	Title              *string
	Text               *string
	Date               *string
	IsVerifiedPurchase bool
}

// MappedReview is normalized review used for classification and reporting.
type MappedReview struct {
	Username   string
	Timestamp  string
	Rating     string
	ReviewText string
}

// ProductInfo is product summary included in report.
type ProductInfo struct {
	Title string
	Price string
}

// ReviewReportEntry is single review verdict in report.
type ReviewReportEntry struct {
	Username       string
	Timestamp      string
	Classification Classification
}

// Report is result of product reviews analysis.
type Report struct {
	ProductID    string
	ProductURL   string
	ProductInfo  ProductInfo
	ReviewReport []ReviewReportEntry
	Message      string
}
