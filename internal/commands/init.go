package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xsd-generator/internal/config"
)

// InitCmd creates the 'init' command
func InitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes xsdgen.yaml (or the file named by --config) listing the seven
OpenDRIVE 1.7 schema files and the default generator settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.FileName + "." + config.FileType
			}

			if err := config.WriteFile(config.Default(), path, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
