package handler

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MichalMitros/review-checker/internal/platform"
	"github.com/MichalMitros/review-checker/internal/platform/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/samber/lo"
)

//go:generate mockery --name Analyzer --filename analyzer.go

const (
	// DefaultRequestsPerMinute is default per IP limit of analysis requests.
	DefaultRequestsPerMinute = 30
	// DefaultMaxBodySize is default limit of request body size in bytes.
	DefaultMaxBodySize = 1 << 20

	productURLField = "product_url"
)

//go:embed static/index.html
var static embed.FS

// Analyzer analyzes product reviews.
type Analyzer interface {
	Analyze(ctx context.Context, productURL string) (*models.Report, error)
}

// Option is custom configuration of Handler.
type Option func(h *Handler)

// Handler serves review analysis HTTP API and front-end page.
type Handler struct {
	analyzer          Analyzer
	logger            *zerolog.Logger
	allowedOrigins    []string
	requestsPerMinute int
	maxBodySize       int64
}

// NewHandler returns new Handler.
// Nil analyzer means model service is not configured, analysis requests fail then.
func NewHandler(analyzer Analyzer, logger *zerolog.Logger, ops ...Option) *Handler {
	han := &Handler{
		analyzer:          analyzer,
		logger:            logger,
		allowedOrigins:    []string{"*"},
		requestsPerMinute: DefaultRequestsPerMinute,
		maxBodySize:       DefaultMaxBodySize,
	}

	for _, op := range ops {
		op(han)
	}

	return han
}

// Routes returns router with all Handler's routes and middlewares.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(*h.logger))
	r.Use(requestIDLogger)
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", h.Index)
	r.Get("/healthz", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.requestsPerMinute, time.Minute))
		r.Use(middleware.RequestSize(h.maxBodySize))
		r.Post("/analyze_reviews", h.AnalyzeReviews)
	})

	return r
}

// AnalyzeReviews analyzes reviews of product from product_url form field.
func (h *Handler) AnalyzeReviews(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	if h.analyzer == nil {
		logger.Error().Msg("model service not configured")
		writeJSON(w, logger, http.StatusInternalServerError, errorResponse{
			Error: "Model service not configured. Check server logs.",
		})
		return
	}

	productURL := r.FormValue(productURLField)

	report, err := h.analyzer.Analyze(r.Context(), productURL)
	if err != nil {
		status := statusCode(err)
		logger.Error().
			Err(err).
			Int("status", status).
			Str("productUrl", productURL).
			Msg("can't analyze reviews")
		writeJSON(w, logger, status, toErrorResponse(err))
		return
	}

	writeJSON(w, logger, http.StatusOK, toAnalyzeResponse(report))
}

// Index serves front-end page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, static, "static/index.html")
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, hlog.FromRequest(r), http.StatusOK, map[string]string{"status": "ok"})
}

// statusCode returns HTTP status matching error kind.
func statusCode(err error) int {
	switch {
	case errors.Is(err, platform.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, platform.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func toErrorResponse(err error) errorResponse {
	var platformErr *platform.Error
	if !errors.As(err, &platformErr) {
		return errorResponse{Error: "Internal server error"}
	}

	return errorResponse{
		Error:   platformErr.Message,
		Details: platformErr.Details,
	}
}

func toAnalyzeResponse(report *models.Report) analyzeResponse {
	return analyzeResponse{
		ProductInfo: productInfo{
			Title: report.ProductInfo.Title,
			Price: report.ProductInfo.Price,
		},
		ReviewReport: lo.Map(report.ReviewReport, func(e models.ReviewReportEntry, _ int) reviewReportEntry {
			return reviewReportEntry{
				Username:       e.Username,
				Timestamp:      e.Timestamp,
				Classification: string(e.Classification),
			}
		}),
		Message: report.Message,
	}
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().
			Err(err).
			Msg("can't write response")
	}
}

func requestIDLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("requestId", reqID)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request handled")
}

// WithAllowedOrigins sets origins allowed by CORS policy.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Handler) {
		if len(origins) > 0 {
			h.allowedOrigins = origins
		}
	}
}

// WithRequestsPerMinute sets per IP limit of analysis requests.
func WithRequestsPerMinute(limit int) Option {
	return func(h *Handler) {
		if limit > 0 {
			h.requestsPerMinute = limit
		}
	}
}

// WithMaxBodySize sets limit of request body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(h *Handler) {
		if size > 0 {
			h.maxBodySize = size
		}
	}
}
