package classifier

import "errors"

var (
	// ErrNoChoices is returned when model response contains no choices.
	ErrNoChoices = errors.New("model response has no choices")
	// ErrNoJSONList is returned when model response doesn't contain JSON list.
	ErrNoJSONList = errors.New("model response doesn't contain JSON list")
	// ErrNotJSONList is returned when JSON found in model response is not a list.
	ErrNotJSONList = errors.New("model response JSON is not a list")
	// ErrMissingAPIKey is returned when model service API key is not set.
	ErrMissingAPIKey = errors.New("model service API key is not set")
	// ErrMissingModel is returned when model name is not set.
	ErrMissingModel = errors.New("model name is not set")
)
