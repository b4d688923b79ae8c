package analyzer

import "errors"

// ErrClassificationsMismatch is returned when classifier returned different number of classifications than reviews.
var ErrClassificationsMismatch = errors.New("classifications don't match reviews")
