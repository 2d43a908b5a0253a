package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xsd-generator/internal/pipeline"
)

// GenerateCmd creates the 'generate' command
func GenerateCmd() *cobra.Command {
	var (
		outputDir string
		workers   int
		keepGoing bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate headers for every configured schema file",
		Long: `Runs every job of the configuration: each schema file is parsed, its union
types are restructured and a header is written to the output directory,
together with the configured IR dumps.

Example:
  xsd-generator generate
  xsd-generator generate -o build/include --workers 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("output") {
				cfg.OutputDir = outputDir
			}

			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			if keepGoing {
				cfg.FailFast = false
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			opts, err := cfg.PipelineOptions()
			if err != nil {
				return err
			}

			p := pipeline.New(opts, newLogger(cmd, cfg))

			summary, runErr := p.Run(cmd.Context(), cfg.PipelineJobs())

			diags := summary.Diagnostics()

			fmt.Fprintf(cmd.OutOrStdout(), "%d generated, %d failed, %d warnings, output: %s\n",
				summary.Succeeded(), summary.Failed(), len(diags.Warnings), opts.OutputDir)

			if runErr != nil {
				return fmt.Errorf("generation failed: %w", runErr)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides output_dir)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Number of schema files processed at once")
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Continue with the remaining files after a failure")

	return cmd
}
