package testdata

import (
	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/samber/lo"
)

// ProductPage is trimmed product page with two reviews.
const ProductPage = `<!DOCTYPE html>
<html>
<head><title>Amazon.in: CartaDen Wooden Serving Tray</title></head>
<body>
<div id="centerCol">
  <span id="productTitle" class="a-size-large">
      CartaDen Wooden Serving Tray for Breakfast
  </span>
  <span id="acrPopover" title="4.3 out of 5 stars"><i class="a-icon-star"></i></span>
  <span id="acrCustomerReviewText"> 1,287 ratings </span>
  <div class="a-section">
    <span class="a-price"><span class="a-price-symbol">₹</span><span class="a-price-whole">499.</span><span class="a-price-fraction">00</span></span>
  </div>
  <div class="a-section">
    <span class="a-price"><span class="a-price-symbol">₹</span><span class="a-price-whole">999.</span><span class="a-price-fraction">00</span></span>
  </div>
  <div id="feature-bullets">
    <ul>
      <li> Made of mango wood </li>
      <li>Handles on both sides</li>
    </ul>
  </div>
  <div id="productDescription">
    <p> Serve breakfast in bed. </p>
  </div>
</div>
<div id="cm-cr-dp-review-list">
  <div id="R1" class="a-section review">
    <span class="a-profile-name">Asha</span>
    <i class="a-icon a-icon-star review-rating"><span class="a-icon-alt">5.0 out of 5 stars</span></i>
    <a class="review-title"><span> Lovely tray </span></a>
    <span class="review-date">Reviewed in India on 12 March 2024</span>
    <span class="a-size-mini a-color-state">Verified Purchase</span>
    <div class="review-text"><span> Sturdy and well finished. </span></div>
  </div>
  <div id="R2" class="a-section review">
    <span class="a-profile-name">Ravi</span>
    <a class="review-title"><span>Ok</span></a>
    <span class="review-date">Reviewed in India on 2 April 2024</span>
    <div class="review-text"><span>Smaller than expected.</span></div>
  </div>
</div>
</body>
</html>`

// ReviewsPage is trimmed reviews page with three reviews.
const ReviewsPage = `<!DOCTYPE html>
<html>
<body>
<div id="cm_cr-review_list">
  <div id="R10" class="a-section review">
    <span class="a-profile-name">Meera</span>
    <i class="review-rating"><span>4.0 out of 5 stars</span></i>
    <a class="review-title">Good value</a>
    <span class="review-date">Reviewed in India on 1 May 2024</span>
    <span class="a-color-state">VERIFIED PURCHASE</span>
    <span class="review-text">Good value for the price.</span>
  </div>
  <div id="R11" class="a-section review">
    <span class="a-profile-name">Karan</span>
    <i class="review-rating"><span>1.0 out of 5 stars</span></i>
    <a class="review-title">Broke</a>
    <span class="review-date">Reviewed in India on 3 May 2024</span>
    <span class="a-color-state">Early Reviewer Rewards</span>
    <span class="review-text">Broke after a week.</span>
  </div>
  <div id="R12" class="a-section review">
    <span class="a-profile-name">Nisha</span>
    <i class="review-rating"><span>5.0 out of 5 stars</span></i>
    <span class="review-date">Reviewed in India on 9 May 2024</span>
    <span class="review-text">Best tray ever!!!</span>
  </div>
</div>
</body>
</html>`

// ProductPageProduct is product expected to be extracted from ProductPage.
var ProductPageProduct = models.Product{
	Name:              lo.ToPtr("CartaDen Wooden Serving Tray for Breakfast"),
	Price:             lo.ToPtr("₹499.00"),
	AverageRating:     lo.ToPtr("4.3 out of 5 stars"),
	TotalRatingsCount: lo.ToPtr("1,287 ratings"),
	Features:          []string{"Made of mango wood", "Handles on both sides"},
	Description:       lo.ToPtr("Serve breakfast in bed."),
	Reviews: []models.Review{
		{
			ReviewerName:       lo.ToPtr("Asha"),
			Rating:             lo.ToPtr("5.0 out of 5 stars"),
			Title:              lo.ToPtr("Lovely tray"),
			Text:               lo.ToPtr("Sturdy and well finished."),
			Date:               lo.ToPtr("Reviewed in India on 12 March 2024"),
			IsVerifiedPurchase: true,
		},
		{
			ReviewerName: lo.ToPtr("Ravi"),
			Title:        lo.ToPtr("Ok"),
			Text:         lo.ToPtr("Smaller than expected."),
			Date:         lo.ToPtr("Reviewed in India on 2 April 2024"),
		},
	},
}

// ReviewsPageProduct is product expected to be extracted from ReviewsPage.
var ReviewsPageProduct = models.Product{
	Reviews: []models.Review{
		{
			ReviewerName:       lo.ToPtr("Meera"),
			Rating:             lo.ToPtr("4.0 out of 5 stars"),
			Title:              lo.ToPtr("Good value"),
			Text:               lo.ToPtr("Good value for the price."),
			Date:               lo.ToPtr("Reviewed in India on 1 May 2024"),
			IsVerifiedPurchase: true,
		},
		{
			ReviewerName: lo.ToPtr("Karan"),
			Rating:       lo.ToPtr("1.0 out of 5 stars"),
			Title:        lo.ToPtr("Broke"),
			Text:         lo.ToPtr("Broke after a week."),
			Date:         lo.ToPtr("Reviewed in India on 3 May 2024"),
		},
		{
			ReviewerName: lo.ToPtr("Nisha"),
			Rating:       lo.ToPtr("5.0 out of 5 stars"),
			Text:         lo.ToPtr("Best tray ever!!!"),
			Date:         lo.ToPtr("Reviewed in India on 9 May 2024"),
		},
	},
}
