package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/MichalMitros/review-checker/internal/platform/models"
)

// jsonListRegexp matches JSON list in ```json code block or the first bracketed list anywhere in text.
var jsonListRegexp = regexp.MustCompile("(?is)```json\\s*(\\[.*?\\])\\s*```|(\\[.*?\\])")

// parseVerdicts returns classifications found in model response text mapped by review index.
// List entries which are not objects or miss id or classification are skipped.
func parseVerdicts(text string) (map[int]models.Classification, error) {
	match := jsonListRegexp.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return nil, ErrNoJSONList
	}

	jsonList := match[1]
	if jsonList == "" {
		jsonList = match[2]
	}

	var decoded any
	if err := json.Unmarshal([]byte(jsonList), &decoded); err != nil {
		return nil, fmt.Errorf("can't decode model response: %w", err)
	}

	entries, ok := decoded.([]any)
	if !ok {
		return nil, ErrNotJSONList
	}

	verdicts := make(map[int]models.Classification, len(entries))
	for _, entry := range entries {
		object, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		id, hasID := object["id"]
		classification, hasClassification := object["classification"]
		if !hasID || !hasClassification {
			continue
		}

		ix, ok := toIndex(id)
		if !ok {
			continue
		}

		// non-string classifications are kept as empty and reported as errors later.
		value, _ := classification.(string)
		verdicts[ix] = models.Classification(value)
	}

	return verdicts, nil
}

// toIndex converts decoded JSON number into review index.
func toIndex(id any) (int, bool) {
	number, ok := id.(float64)
	if !ok || number != math.Trunc(number) {
		return 0, false
	}

	return int(number), true
}
