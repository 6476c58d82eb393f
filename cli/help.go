package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mattsolo1/grove-pick/tui/theme"
)

// SetStyledHelp applies consistent styling to a command's help output.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

// PrintError prints a styled error message to stderr with a help hint.
func PrintError(cmd *cobra.Command, err error) {
	t := theme.NewTheme("")
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", t.Error.Render("Error:"), err.Error())
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", t.Muted.Render(fmt.Sprintf("Run '%s --help' for usage.", cmd.CommandPath())))
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	t := theme.NewTheme("")
	section := t.Warning

	fmt.Println(" " + t.Cursor.Render(strings.ToUpper(cmd.CommandPath())))
	if cmd.Short != "" {
		fmt.Println(" " + cmd.Short)
	}
	if cmd.Long != "" && cmd.Long != cmd.Short {
		fmt.Println()
		for _, line := range strings.Split(strings.TrimSpace(cmd.Long), "\n") {
			fmt.Println(" " + line)
		}
	}

	if cmd.Runnable() || cmd.HasSubCommands() {
		fmt.Println("\n " + section.Render("USAGE"))
		if cmd.Runnable() {
			fmt.Printf(" %s\n", cmd.UseLine())
		}
		if cmd.HasSubCommands() {
			fmt.Printf(" %s [command]\n", cmd.CommandPath())
		}
	}

	if cmd.HasAvailableSubCommands() {
		maxLen := 0
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() && len(sub.Name()) > maxLen {
				maxLen = len(sub.Name())
			}
		}

		fmt.Println("\n " + section.Render("COMMANDS"))
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				padding := strings.Repeat(" ", maxLen-len(sub.Name()))
				fmt.Printf(" %s%s  %s\n", t.Info.Render(sub.Name()), padding, sub.Short)
			}
		}
	}

	var visibleFlags []*pflag.Flag
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			visibleFlags = append(visibleFlags, f)
		}
	})

	if len(visibleFlags) > 0 {
		fmt.Println("\n " + section.Render("FLAGS"))
		maxFlagLen := 0
		for _, f := range visibleFlags {
			if len(formatFlagName(f)) > maxFlagLen {
				maxFlagLen = len(formatFlagName(f))
			}
		}
		for _, f := range visibleFlags {
			flagStr := formatFlagName(f)
			padding := strings.Repeat(" ", maxFlagLen-len(flagStr))
			usage := f.Usage
			if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "[]" {
				usage += t.Muted.Render(fmt.Sprintf(" (default: %s)", f.DefValue))
			}
			fmt.Printf(" %s%s  %s\n", t.Prompt.Render(flagStr), padding, usage)
		}
	}

	if cmd.Example != "" {
		fmt.Println("\n " + section.Render("EXAMPLES"))
		for _, line := range strings.Split(strings.TrimSpace(cmd.Example), "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "#") {
				fmt.Println("  " + t.Muted.Render(trimmed))
			} else {
				fmt.Println("  " + trimmed)
			}
		}
	}

	if cmd.HasSubCommands() {
		fmt.Printf("\n Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

// formatFlagName returns a formatted flag string like "-f, --flag" or "--flag".
func formatFlagName(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	}
	return fmt.Sprintf("    --%s", f.Name)
}
