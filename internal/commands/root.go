package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xsd-generator/internal/config"
	"xsd-generator/internal/logger"
)

// Version is set at build time with -ldflags "-X xsd-generator/internal/commands.Version=...".
var Version = "dev"

// RootCmd creates and returns the root command for the generator CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xsd-generator",
		Short: "Generate C++ headers from OpenDRIVE XML schemas",
		Long: `xsd-generator reads the OpenDRIVE XML schema files, builds an intermediate
representation of their type definitions and renders one C++ header per file.

Union types are rebuilt as structs holding their member types, and every
header can be accompanied by a JSON, YAML or spew dump of its IR.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (default ./xsdgen.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newLogger returns a logger writing to the command's error stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	level := cfg.Level()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logger.LevelDebug
	}

	return logger.New(level, cmd.ErrOrStderr())
}

// VersionCmd creates the 'version' command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xsd-generator %s\n", Version)
		},
	}
}
