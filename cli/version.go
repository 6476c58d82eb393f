package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-pick/version"
)

// SetVersionTemplate sets a custom version template for a cobra command
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.Platform))
}

// NewVersionCommand creates a standard version command
func NewVersionCommand(componentName string, info version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version number of %s", componentName),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", componentName, info.Version)
			fmt.Printf("  Commit:    %s\n", info.Commit)
			fmt.Printf("  Built:     %s\n", info.BuildDate)
			fmt.Printf("  Platform:  %s\n", info.Platform)
		},
	}
}
