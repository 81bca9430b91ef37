package cli

import (
	"context"
	"fmt"
	"time"

	"resumelens/internal/common"
	"resumelens/internal/simulator"
	"resumelens/internal/types"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [resume-file]",
	Short: "Simulate how an ATS platform parses a resume",
	Long: `Simulate how a specific ATS platform ingests a resume. The command takes
one argument: the path to a resume JSON file. The report shows the parse
status of every section and field under that platform's rules, along with
warnings and improvement tips.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if simulateConfig.OutputFormat == "" {
			simulateConfig.OutputFormat = cfg.App.DefaultFormat
		}
		simulateConfig.MaxFileSize = cfg.App.MaxFileSize
		if simulatePlatform == "" {
			simulatePlatform = cfg.Engines.DefaultPlatform
		}
		return common.ValidateOutputFormat(simulateConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSimulate,
}

var (
	simulateConfig   common.CommandConfig
	simulatePlatform string
)

func init() {
	simulateCmd.Flags().StringVarP(&simulateConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	simulateCmd.Flags().StringVar(&simulateConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	simulateCmd.Flags().StringVarP(&simulatePlatform, "platform", "p", "", "Platform to simulate (default from config)")

	_ = simulateCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = simulateCmd.RegisterFlagCompletionFunc("platform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return simulator.PlatformIDs(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (types.SimulateInput, error) {
		if len(contents) != 1 {
			return types.SimulateInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		data, err := parseResumeContent(contents[0], logger)
		if err != nil {
			return types.SimulateInput{}, err
		}
		return types.SimulateInput{Resume: data, Platform: simulatePlatform}, nil
	}

	logDetails := func(input types.SimulateInput, cfg common.CommandConfig) {
		logger.Info("Starting platform simulation",
			"platform", input.Platform,
			"output_format", cfg.OutputFormat)
	}

	simulateOperation := func(ctx context.Context, input types.SimulateInput) (types.SimulateOutput, error) {
		result, err := simulator.Simulate(input.Resume, input.Platform)
		if err != nil {
			return types.SimulateOutput{}, err
		}
		return types.SimulateOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Result:      result,
		}, nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		simulateConfig,
		args,
		createInput,
		simulateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to simulate platform parsing: %w", err)
	}
	logger.Info("Platform simulation completed successfully")
	return nil
}
