package cli

import (
	"context"
	"fmt"
	"time"

	"resumelens/internal/ats"
	"resumelens/internal/common"
	"resumelens/internal/resume"
	"resumelens/internal/types"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume-file]",
	Short: "Score a resume against ATS compatibility checks",
	Long: `Score a resume against a fixed set of weighted ATS compatibility checks.
The command takes one argument: the path to a resume JSON file. The report
lists every check with its verdict and a tip, an overall 0-100 score, and a
letter grade.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		scoreConfig.MaxFileSize = cfg.App.MaxFileSize
		// Validate format against supported formats
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (types.ScoreInput, error) {
		if len(contents) != 1 {
			return types.ScoreInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		data, err := parseResumeContent(contents[0], logger)
		if err != nil {
			return types.ScoreInput{}, err
		}
		return types.ScoreInput{Resume: data}, nil
	}

	logDetails := func(input types.ScoreInput, cfg common.CommandConfig) {
		logger.Info("Starting resume scoring",
			"experience_entries", len(input.Resume.Experiences),
			"skills", len(resume.SplitDelimited(input.Resume.Skills)),
			"output_format", cfg.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, input types.ScoreInput) (types.ScoreOutput, error) {
		return types.ScoreOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Report:      ats.Evaluate(input.Resume),
		}, nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args,
		createInput,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	logger.Info("Resume scoring completed successfully")
	return nil
}
