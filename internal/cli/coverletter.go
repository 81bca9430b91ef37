package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"resumelens/internal/common"
	"resumelens/internal/coverletter"
	"resumelens/internal/types"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var coverLetterCmd = &cobra.Command{
	Use:   "coverletter [resume-file] [job-description-file]",
	Short: "Generate a cover letter from a resume and job description",
	Long: `Generate a cover letter from resume facts and, optionally, a job
description. The first argument is the path to a resume JSON file; the second,
if given, is a plain text job description. When a job description is supplied
the letter derives the company name, role and requirements from it and backs
them with achievements pulled from the resume.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if coverLetterConfig.OutputFormat == "" {
			coverLetterConfig.OutputFormat = cfg.App.DefaultFormat
		}
		coverLetterConfig.MaxFileSize = cfg.App.MaxFileSize
		if coverLetterTone == "" {
			coverLetterTone = cfg.Engines.DefaultTone
		}
		return common.ValidateOutputFormat(coverLetterConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCoverLetter,
}

var (
	coverLetterConfig  common.CommandConfig
	coverLetterTone    string
	coverLetterCompany string
	coverLetterSeed    int64
)

func init() {
	coverLetterCmd.Flags().StringVarP(&coverLetterConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	coverLetterCmd.Flags().StringVar(&coverLetterConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	coverLetterCmd.Flags().StringVarP(&coverLetterTone, "tone", "t", "", "Letter tone: professional, enthusiastic, or conversational (default from config)")
	coverLetterCmd.Flags().StringVar(&coverLetterCompany, "company", "", "Company name override (default: derived from job description)")
	coverLetterCmd.Flags().Int64Var(&coverLetterSeed, "seed", -1, "Seed for opener selection (-1 for random)")

	_ = coverLetterCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
	_ = coverLetterCmd.RegisterFlagCompletionFunc("tone", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return coverletter.Tones(), cobra.ShellCompDirectiveNoFileComp
	})
}

// seededRand makes letter generation reproducible for a fixed --seed
type seededRand struct {
	rng *rand.Rand
}

func (s seededRand) Intn(n int) int { return s.rng.IntN(n) }

func runCoverLetter(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (types.CoverLetterInput, error) {
		if len(contents) == 0 {
			return types.CoverLetterInput{}, fmt.Errorf("expected at least a resume file path")
		}
		data, err := parseResumeContent(contents[0], logger)
		if err != nil {
			return types.CoverLetterInput{}, err
		}
		jobDescription := ""
		if len(contents) > 1 {
			jobDescription = contents[1]
		}
		return types.CoverLetterInput{
			Resume:         data,
			JobDescription: jobDescription,
			Company:        coverLetterCompany,
			Tone:           coverletter.Tone(coverLetterTone),
		}, nil
	}

	logDetails := func(input types.CoverLetterInput, cfg common.CommandConfig) {
		logger.Info("Starting cover letter generation",
			"tone", string(input.Tone),
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	generateOperation := func(ctx context.Context, input types.CoverLetterInput) (types.CoverLetterOutput, error) {
		opts := coverletter.Options{
			JobDescription: input.JobDescription,
			Company:        input.Company,
			Tone:           input.Tone,
		}
		if coverLetterSeed >= 0 {
			opts.Rand = seededRand{rng: rand.New(rand.NewPCG(uint64(coverLetterSeed), 0))}
		}

		letter, err := coverletter.Generate(input.Resume, opts)
		if err != nil {
			return types.CoverLetterOutput{}, err
		}
		return types.CoverLetterOutput{
			ReportID:    uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Tone:        input.Tone,
			Letter:      letter,
		}, nil
	}

	err := common.RunEngineCommand(
		cmd.Context(),
		logger,
		coverLetterConfig,
		args,
		createInput,
		generateOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate cover letter: %w", err)
	}
	logger.Info("Cover letter generation completed successfully")
	return nil
}
