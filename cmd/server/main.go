package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MichalMitros/review-checker/cmd/server/config"
	"github.com/MichalMitros/review-checker/internal/analyzer"
	"github.com/MichalMitros/review-checker/internal/classifier"
	"github.com/MichalMitros/review-checker/internal/extractor"
	"github.com/MichalMitros/review-checker/internal/fetcher"
	"github.com/MichalMitros/review-checker/internal/handler"
	"github.com/MichalMitros/review-checker/internal/platform/rabbitmq"
	"github.com/MichalMitros/review-checker/pkg/v1/reports"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("level", cfg.LogLevel).
			Msg("can't parse log level")
	}
	logger = logger.Level(level)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	analyzerOps := []analyzer.Option{analyzer.WithMarketplaceURL(cfg.MarketplaceURL)}

	// report notifications are optional
	var amqpConnection *amqp.Connection
	var rmq *rabbitmq.RabbitMQ
	if cfg.RabbitMQ.URL != "" {
		amqpConnection, err = amqp.Dial(cfg.RabbitMQ.URL)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ connection")
		}

		rmq, err = rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't open RabbitMQ channel")
		}

		notifier := reports.NewReportNotifier(reports.NewRabbitMQSender(rmq, cfg.RabbitMQ.ReportsRoutingKey))
		analyzerOps = append(analyzerOps, analyzer.WithNotifier(notifier))
	}

	var an handler.Analyzer
	cls, err := newClassifier(cfg, httpClient, &logger)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("model service not configured, analysis requests will fail")
	} else {
		an = analyzer.NewAnalyzer(
			fetcher.NewChain(&logger, pageSources(cfg, httpClient, &logger)...),
			extractor.NewExtractor(&logger),
			cls,
			&logger,
			analyzerOps...,
		)
	}

	han := handler.NewHandler(
		an,
		&logger,
		handler.WithAllowedOrigins(cfg.HTTP.AllowedOrigins),
		handler.WithRequestsPerMinute(cfg.HTTP.RateLimitPerMinute),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           han.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().
				Err(err).
				Msg("can't start HTTP server")
		}
	}()

	logger.Info().
		Str("addr", cfg.Addr).
		Msg("review checker up and running")

	// handle graceful shutdown
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	<-termChan

	logger.Info().Msg("graceful shutdown start")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shutdown HTTP server")
	}

	if amqpConnection != nil {
		if err := rmq.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ channel")
		}
		if err := amqpConnection.Close(); err != nil {
			logger.Error().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}

	logger.Info().Msg("graceful shutdown successful")
}

func newClassifier(cfg *config.Config, httpClient *http.Client, logger *zerolog.Logger) (*classifier.Classifier, error) {
	completer, err := classifier.NewCompleter(cfg.LLM.APIKey, cfg.LLM.BaseURL, httpClient)
	if err != nil {
		return nil, err
	}

	return classifier.NewClassifier(
		completer,
		cfg.LLM.Model,
		logger,
		classifier.WithMaxReviews(cfg.LLM.MaxReviews),
		classifier.WithJSONMode(cfg.LLM.JSONMode),
	)
}

// pageSources returns page sources in fetching order, crawling service goes first when configured.
func pageSources(cfg *config.Config, httpClient *http.Client, logger *zerolog.Logger) []fetcher.Source {
	sources := make([]fetcher.Source, 0, 2)

	if cfg.Firecrawl.APIKey != "" {
		sources = append(sources, fetcher.NewFirecrawl(httpClient, cfg.Firecrawl.URL, cfg.Firecrawl.APIKey))
	} else {
		logger.Warn().Msg("firecrawl API key not set, pages will be fetched directly")
	}

	return append(sources, fetcher.NewFetcher(httpClient, cfg.UserAgent))
}
