package cli

import (
	"context"
	"fmt"
	"time"

	"resumelens/internal/common"
	"resumelens/internal/keywords"
	"resumelens/internal/types"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Match a resume against job description keywords",
	Long: `Match a resume against the significant terms of a job description.
The command takes two arguments: the path to a resume JSON file and the path
to a plain text job description. The report lists matched and missing
keywords and the overall match percentage.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		matchConfig.MaxFileSize = cfg.App.MaxFileSize
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (types.MatchInput, error) {
		if len(contents) != 2 {
			return types.MatchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		data, err := parseResumeContent(contents[0], logger)
		if err != nil {
			return types.MatchInput{}, err
		}
		return types.MatchInput{Resume: data, JobDescription: contents[1]}, nil
	}

	logDetails := func(input types.MatchInput, cfg common.CommandConfig) {
		logger.Info("Starting keyword matching",
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input types.MatchInput) (types.MatchOutput, error) {
		return types.MatchOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Match:       keywords.Match(input.JobDescription, input.Resume),
		}, nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match keywords: %w", err)
	}
	logger.Info("Keyword matching completed successfully")
	return nil
}
