package cli

import (
	"context"

	"resumelens/internal/config"
	"resumelens/internal/errors"
	"resumelens/internal/resume"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "resumelens",
	Short: "A CLI tool for analyzing resumes against ATS platforms",
	Long: `ResumeLens is a command-line tool that scores resumes the way applicant
tracking systems do, simulates how specific ATS vendors parse them, matches
resume content against job description keywords, and drafts cover letters
from resume facts.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// parseResumeContent parses resume JSON read from a file. Schema violations
// are logged as warnings; the engines tolerate partial data.
func parseResumeContent(content string, logger *errors.Logger) (resume.ResumeData, error) {
	data, warnings, err := resume.ParseJSON([]byte(content))
	if err != nil {
		return resume.ResumeData{}, errors.NewValidationError(errors.ErrCodeInvalidResume,
			"Cannot parse resume JSON", err)
	}
	for _, w := range warnings {
		logger.Warn("Resume schema violation", "field", w.Field, "message", w.Message)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(coverLetterCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
