package analyzer

import (
	"regexp"
	"strings"
)

// DefaultMarketplaceURL is base url of marketplace which pages are fetched.
const DefaultMarketplaceURL = "https://www.amazon.in"

var (
	productPageIDRegexp = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)
	reviewsPageIDRegexp = regexp.MustCompile(`/product-reviews/([A-Z0-9]{10})`)
)

// ExtractProductID returns product identifier found in product or reviews page url.
// Product page path takes precedence. ok is false when url contains no identifier.
func ExtractProductID(productURL string) (id string, ok bool) {
	for _, re := range []*regexp.Regexp{productPageIDRegexp, reviewsPageIDRegexp} {
		if match := re.FindStringSubmatch(productURL); match != nil {
			return match[1], true
		}
	}

	return "", false
}

// ProductPageURL returns canonical product page url.
func ProductPageURL(baseURL, productID string) string {
	return strings.TrimSuffix(baseURL, "/") + "/dp/" + productID
}

// ReviewsPageURL returns canonical url of page listing all product reviews.
func ReviewsPageURL(baseURL, productID string) string {
	return strings.TrimSuffix(baseURL, "/") + "/product-reviews/" + productID +
		"/ref=cm_cr_dp_d_show_all_btm?ie=UTF8&reviewerType=all_reviews"
}
