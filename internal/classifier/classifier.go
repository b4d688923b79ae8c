package classifier

import (
	"context"
	"errors"
	"net/http"

	"github.com/MichalMitros/review-checker/internal/platform"
	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is Gemini OpenAI compatible API url.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	// DefaultModel is model used for classification when not configured otherwise.
	DefaultModel = "gemini-1.5-flash-latest"
	// DefaultMaxReviews is maximal number of reviews sent to model in single request.
	DefaultMaxReviews = 50
)

//go:generate mockery --name Completer --filename completer.go

// Completer creates chat completions.
type Completer interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Option is custom configuration of Classifier.
type Option func(c *Classifier)

// Classifier classifies reviews as real or fake using large language model.
type Classifier struct {
	completer   Completer
	model       string
	maxReviews  int
	jsonMode    bool
	temperature float32
	logger      *zerolog.Logger
}

// NewCompleter returns client of OpenAI compatible chat completions API.
// It returns configuration error if apiKey is empty.
func NewCompleter(apiKey, baseURL string, httpClient *http.Client) (*openai.Client, error) {
	if apiKey == "" {
		return nil, platform.NewError(platform.ErrNotConfigured, "model service not configured", ErrMissingAPIKey)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return openai.NewClientWithConfig(cfg), nil
}

// NewClassifier returns new Classifier.
// It returns configuration error if model is empty.
func NewClassifier(completer Completer, model string, logger *zerolog.Logger, ops ...Option) (*Classifier, error) {
	if model == "" {
		return nil, platform.NewError(platform.ErrNotConfigured, "model service not configured", ErrMissingModel)
	}

	cls := &Classifier{
		completer:  completer,
		model:      model,
		maxReviews: DefaultMaxReviews,
		logger:     logger,
	}

	for _, op := range ops {
		op(cls)
	}

	return cls, nil
}

// Classify returns classification of every review, in reviews order.
// Only first maxReviews reviews are sent to the model, remaining ones are classified as not analyzed.
// Model is not called when there are no reviews.
func (c *Classifier) Classify(
	ctx context.Context,
	productTitle string,
	reviews []models.MappedReview,
) ([]models.Classification, error) {
	if len(reviews) == 0 {
		return []models.Classification{}, nil
	}

	analyzed := reviews[:min(len(reviews), c.maxReviews)]

	prompt, err := buildPrompt(productTitle, analyzed)
	if err != nil {
		return nil, platform.NewError(platform.ErrUpstream, "can't build model prompt", err)
	}

	c.logger.Debug().
		Int("reviews", len(analyzed)).
		Str("model", c.model).
		Msg("sending reviews to model")

	resp, err := c.completer.CreateChatCompletion(ctx, c.request(prompt))
	if err != nil {
		return nil, platform.NewError(platform.ErrUpstream, "model API request failed", err).
			WithDetails(err.Error())
	}

	if len(resp.Choices) == 0 {
		return nil, platform.NewError(platform.ErrUpstream, "model API request failed", ErrNoChoices)
	}

	content := resp.Choices[0].Message.Content

	verdicts, err := parseVerdicts(content)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("response", content).
			Msg("can't parse model response")

		if errors.Is(err, ErrNoJSONList) {
			return nil, platform.NewError(platform.ErrUpstream,
				"failed to parse model response (JSON structure not found)", err)
		}
		return nil, platform.NewError(platform.ErrUpstream,
			"failed to parse model response (JSON decode error)", err)
	}

	classifications := make([]models.Classification, len(reviews))
	for ix := range reviews {
		if ix >= len(analyzed) {
			classifications[ix] = models.ClassificationNotAnalyzed
			continue
		}

		verdict, ok := verdicts[ix]
		if !ok || !verdict.IsVerdict() {
			c.logger.Warn().
				Int("id", ix).
				Str("classification", string(verdict)).
				Msg("unexpected classification, defaulting to error")
			verdict = models.ClassificationError
		}
		classifications[ix] = verdict
	}

	return classifications, nil
}

func (c *Classifier) request(prompt string) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: c.temperature,
	}

	if c.jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	return req
}

// WithMaxReviews sets maximal number of reviews sent to the model.
func WithMaxReviews(maxReviews int) Option {
	return func(c *Classifier) {
		if maxReviews > 0 {
			c.maxReviews = maxReviews
		}
	}
}

// WithJSONMode makes Classifier request JSON formatted model responses.
func WithJSONMode(enabled bool) Option {
	return func(c *Classifier) {
		c.jsonMode = enabled
	}
}

// WithTemperature sets model sampling temperature.
func WithTemperature(temperature float32) Option {
	return func(c *Classifier) {
		c.temperature = temperature
	}
}
