package server

import (
	"time"

	"resumelens/internal/config"
	resumelensErrors "resumelens/internal/errors"
	"resumelens/internal/resume"

	"github.com/go-playground/validator/v10"
)

// Request bodies for the four analysis endpoints. Validation tags are
// enforced by validateRequest before any engine runs.
type ScoreRequest struct {
	Resume *resume.ResumeData `json:"resume" validate:"required"`
}

type SimulateRequest struct {
	Resume   *resume.ResumeData `json:"resume" validate:"required"`
	Platform string             `json:"platform"`
}

type MatchRequest struct {
	Resume         *resume.ResumeData `json:"resume" validate:"required"`
	JobDescription string             `json:"jobDescription" validate:"required"`
}

type CoverLetterRequest struct {
	Resume         *resume.ResumeData `json:"resume" validate:"required"`
	JobDescription string             `json:"jobDescription"`
	Company        string             `json:"company"`
	Tone           string             `json:"tone" validate:"omitempty,oneof=professional enthusiastic conversational"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// requestValidator validates incoming request bodies against their struct tags
var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *resumelensErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
// (Refactored to reduce long parameter list in NewServer)
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *resumelensErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
