package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"resumelens/internal/ats"
	"resumelens/internal/coverletter"
	"resumelens/internal/keywords"
	"resumelens/internal/observability"
	"resumelens/internal/simulator"
	"resumelens/internal/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if !s.decodeAndValidate(w, r, &req, span) {
			return
		}

		span.SetAttributes(
			attribute.Int("request.experience_count", len(req.Resume.Experiences)),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var report ats.Report
		err := metrics.TrackEngineOperation(ctx, "score", func(ctx context.Context) error {
			report = ats.Evaluate(*req.Resume)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_scored", false, om)
			writeErrorResponse(w, "Failed to score resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("ats.score", report.Score),
			attribute.String("ats.grade", report.Grade))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", report.Score),
		)

		writeJSONResponse(w, span, types.ScoreOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Report:      report,
		})
	}
}

// createSimulateHandler wraps the platform simulation handler with observability
func (s *Server) createSimulateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.simulate")
		defer span.End()

		var req SimulateRequest
		if !s.decodeAndValidate(w, r, &req, span) {
			return
		}

		platform := req.Platform
		if platform == "" {
			platform = s.AppConfig.Engines.DefaultPlatform
		}

		span.SetAttributes(
			attribute.String("request.platform", platform),
			attribute.String("operation", "simulate"),
		)

		metrics := om.GetMetrics()
		var result simulator.Result
		err := metrics.TrackEngineOperation(ctx, "simulate", func(ctx context.Context) error {
			var simErr error
			result, simErr = simulator.Simulate(*req.Resume, platform)
			return simErr
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			metrics.RecordBusinessMetric(ctx, "simulation_run", false, om,
				attribute.String("platform", platform))
			writeErrorResponse(w, "Unknown platform", err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordBusinessMetric(ctx, "simulation_run", true, om,
			attribute.String("platform", platform),
			attribute.Int("overall_score", result.OverallScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("overall_score", result.OverallScore),
		)

		writeJSONResponse(w, span, types.SimulateOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Result:      result,
		})
	}
}

// createMatchHandler wraps the keyword match handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if !s.decodeAndValidate(w, r, &req, span) {
			return
		}

		if !s.checkFieldSize(w, span, "jobDescription", len(req.JobDescription)) {
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
		)

		metrics := om.GetMetrics()
		var result keywords.MatchResult
		err := metrics.TrackEngineOperation(ctx, "match", func(ctx context.Context) error {
			result = keywords.Match(req.JobDescription, *req.Resume)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "match_computed", false, om)
			writeErrorResponse(w, "Failed to match keywords", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "match_computed", true, om,
			attribute.Int("match_percentage", result.MatchPercentage),
			attribute.Int("total_keywords", result.TotalKeywords))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("match_percentage", result.MatchPercentage),
		)

		writeJSONResponse(w, span, types.MatchOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Match:       result,
		})
	}
}

// createCoverLetterHandler wraps the cover letter handler with observability
func (s *Server) createCoverLetterHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.coverletter")
		defer span.End()

		var req CoverLetterRequest
		if !s.decodeAndValidate(w, r, &req, span) {
			return
		}

		if !s.checkFieldSize(w, span, "jobDescription", len(req.JobDescription)) {
			return
		}

		tone := req.Tone
		if tone == "" {
			tone = s.AppConfig.Engines.DefaultTone
		}

		span.SetAttributes(
			attribute.String("request.tone", tone),
			attribute.String("operation", "coverletter"),
		)

		metrics := om.GetMetrics()
		var letter string
		err := metrics.TrackEngineOperation(ctx, "coverletter", func(ctx context.Context) error {
			var genErr error
			letter, genErr = coverletter.Generate(*req.Resume, coverletter.Options{
				JobDescription: req.JobDescription,
				Company:        req.Company,
				Tone:           coverletter.Tone(tone),
			})
			return genErr
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			metrics.RecordBusinessMetric(ctx, "letter_generated", false, om)
			writeErrorResponse(w, "Failed to generate cover letter", err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordBusinessMetric(ctx, "letter_generated", true, om,
			attribute.String("tone", tone),
			attribute.Int("letter_length", len(letter)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("letter_length", len(letter)),
		)

		writeJSONResponse(w, span, types.CoverLetterOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Tone:        coverletter.Tone(tone),
			Letter:      letter,
		})
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// writeJSONResponse encodes a successful engine result
func writeJSONResponse(w http.ResponseWriter, span oteltrace.Span, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
