package modelstesting

import (
	"fmt"
	"math/rand"

	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
)

// FakeProduct returns models.Product with fake data and random number of fake reviews.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		Name:              lo.ToPtr(faker.Sentence()),
		Price:             lo.ToPtr(fmt.Sprintf("₹%d.00", rand.Intn(5000)+1)),
		AverageRating:     lo.ToPtr("4.1 out of 5 stars"),
		TotalRatingsCount: lo.ToPtr("1,024 ratings"),
		Features:          fakeFeatures(),
		Description:       lo.ToPtr(faker.Paragraph()),
		Reviews:           FakeReviews(rand.Intn(5) + 1),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeReview returns models.Review with all fields filled with fake data.
func FakeReview(ops ...func(r *models.Review)) models.Review {
	review := models.Review{
		ReviewerName:       lo.ToPtr(faker.Name()),
		Rating:             lo.ToPtr("5.0 out of 5 stars"),
		Title:              lo.ToPtr(faker.Sentence()),
		Text:               lo.ToPtr(faker.Paragraph()),
		Date:               lo.ToPtr("Reviewed in India on " + faker.Date()),
		IsVerifiedPurchase: true,
	}

	for _, op := range ops {
		op(&review)
	}

	return review
}

// FakeReviews returns n fake reviews.
func FakeReviews(n int) []models.Review {
	reviews := make([]models.Review, 0, n)
	for range n {
		reviews = append(reviews, FakeReview())
	}

	return reviews
}

// FakeMappedReview returns models.MappedReview with fake data.
func FakeMappedReview(ops ...func(r *models.MappedReview)) models.MappedReview {
	review := models.MappedReview{
		Username:   faker.Name(),
		Timestamp:  faker.Date(),
		Rating:     "4.0",
		ReviewText: faker.Paragraph(),
	}

	for _, op := range ops {
		op(&review)
	}

	return review
}

// FakeMappedReviews returns n fake mapped reviews.
func FakeMappedReviews(n int) []models.MappedReview {
	reviews := make([]models.MappedReview, 0, n)
	for range n {
		reviews = append(reviews, FakeMappedReview())
	}

	return reviews
}

func fakeFeatures() []string {
	featuresLen := rand.Intn(5) + 1
	features := make([]string, 0, featuresLen)
	for range featuresLen {
		features = append(features, faker.Sentence())
	}

	return features
}
