// Package cli holds the shared cobra plumbing: standard flags, the styled
// help renderer and the user-facing error handler.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pick/config"
	"github.com/mattsolo1/grove-pick/logging"
)

// CommandOptions holds common options parsed from the standard flags
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flag set
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to grove-pick.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command) *logrus.Logger {
	entry := logging.NewLogger("cli")
	logger := entry.Logger

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig resolves the effective configuration: the --config flag when
// set, otherwise the nearest config file walking up from the working
// directory. A missing file yields defaults, not an error.
func LoadConfig(opts CommandOptions) (*config.Config, error) {
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}
	return config.LoadDefault()
}
