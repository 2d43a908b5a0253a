package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"xsd-generator/internal/dump"
	"xsd-generator/internal/pipeline"
)

// IRCmd creates the 'ir' command
func IRCmd() *cobra.Command {
	var (
		format string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "ir <schema.xsd>",
		Short: "Print the intermediate representation of one schema file",
		Long: `Parses one schema file, restructures its unions and prints the resulting
IR to standard output. Nothing is written to the output directory.

Example:
  xsd-generator ir schemas/opendrive_17_road.xsd
  xsd-generator ir schemas/opendrive_17_lane.xsd --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dump.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			opts, err := cfg.PipelineOptions()
			if err != nil {
				return err
			}

			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			log := newLogger(cmd, cfg)

			rec, diags, err := pipeline.New(opts, log).Transform(args[0], name)
			if err != nil {
				return err
			}

			for _, d := range diags.Warnings {
				log.Warn(d.String())
			}

			out, err := dump.Serialize(rec, f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", dump.FormatJSON.String(), "Output format (json, yaml, spew)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Record name (default: schema file name)")

	return cmd
}
