package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MichalMitros/review-checker/internal/platform/models"
)

const promptTemplate = `
Analyze the following Amazon product reviews for the product titled "%s".
For each review, determine if it seems like a "fake" review or a "real" review based on its content, language, rating, and context. Consider factors like overly positive/negative generic language, mentions of incentives, suspicious patterns, or lack of specific detail.

Reviews:
%s

Please provide your analysis ONLY in the following JSON format: A list of objects, where each object corresponds to a review in the input list (use the 'id' field for mapping). Each object must contain the 'id' and a field 'classification' which should be either the string "fake" or the string "real".

Example Output Format:
[
  { "id": 0, "classification": "real" },
  { "id": 1, "classification": "fake" },
  ...
]

Provide ONLY the JSON list as your response.
`

type promptReview struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Timestamp  string `json:"timestamp"`
	Rating     string `json:"rating"`
	ReviewText string `json:"review_text"`
}

// buildPrompt returns prompt asking model to classify reviews of product with provided title.
func buildPrompt(productTitle string, reviews []models.MappedReview) (string, error) {
	indexed := make([]promptReview, 0, len(reviews))
	for ix, review := range reviews {
		indexed = append(indexed, promptReview{
			ID:         ix,
			Username:   review.Username,
			Timestamp:  review.Timestamp,
			Rating:     review.Rating,
			ReviewText: review.ReviewText,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(indexed); err != nil {
		return "", fmt.Errorf("can't encode reviews: %w", err)
	}

	return fmt.Sprintf(promptTemplate, productTitle, strings.TrimSuffix(buf.String(), "\n")), nil
}
