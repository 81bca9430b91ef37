package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"resumelens/internal/coverletter"
	"resumelens/internal/simulator"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// healthHandler provides a health check endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "resumelens",
		"version": s.Version,
		"engines": map[string]any{
			"score":       map[string]any{"available": true},
			"simulate":    map[string]any{"available": true, "platforms": len(simulator.PlatformIDs())},
			"match":       map[string]any{"available": true},
			"coverletter": map[string]any{"available": true, "tones": len(coverletter.Tones())},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// platformsHandler lists the available platform parsing profiles
func (s *Server) platformsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	all := simulator.Platforms()
	platforms := make([]map[string]any, 0, len(all))
	for _, p := range all {
		platforms = append(platforms, map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"quirks":      p.Quirks,
		})
	}

	response := map[string]any{
		"platforms": platforms,
		"default":   s.AppConfig.Engines.DefaultPlatform,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode platforms response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "resumelens",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// decodeAndValidate parses the JSON body and runs struct validation.
// It writes the error response itself and reports whether the request
// may proceed.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any, span oteltrace.Span) bool {
	if err := parseJSONRequest(r, req); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return false
	}

	if err := requestValidator.Struct(req); err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "validation"))
		writeErrorResponse(w, "Invalid request", formatValidationError(err), http.StatusBadRequest)
		return false
	}

	return true
}

// checkFieldSize rejects oversized text fields before the engines see them
func (s *Server) checkFieldSize(w http.ResponseWriter, span oteltrace.Span, field string, size int) bool {
	if s.MaxRequestSize <= 0 || size <= int(s.MaxRequestSize/2) {
		return true
	}

	err := fmt.Errorf("%s too large: %d chars", field, size)
	span.RecordError(err)
	span.SetAttributes(attribute.String("error.type", "validation"))
	writeErrorResponse(w, "Field too large",
		fmt.Sprintf("%s exceeds recommended size limit of %d characters", field, s.MaxRequestSize/2),
		http.StatusBadRequest)
	return false
}

// formatValidationError renders validator errors as a readable field list
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msg := ""
	for i, fieldErr := range validationErrors {
		if i > 0 {
			msg += "; "
		}
		switch fieldErr.Tag() {
		case "required":
			msg += fmt.Sprintf("%s field is required", fieldErr.Field())
		case "oneof":
			msg += fmt.Sprintf("%s must be one of: %s", fieldErr.Field(), fieldErr.Param())
		default:
			msg += fmt.Sprintf("%s failed %s validation", fieldErr.Field(), fieldErr.Tag())
		}
	}
	return msg
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
