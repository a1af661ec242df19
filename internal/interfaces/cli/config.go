package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	configdomain "qform.io/cli/internal/core/domain/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	configCmd.AddCommand(NewConfigShowCommand(container))

	return configCmd
}

// NewConfigShowCommand creates the show subcommand
func NewConfigShowCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration and where each value came from",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := container.Runtime()
			out := cmd.OutOrStdout()

			keys := make([]string, 0, len(rt.Snapshot))
			for k := range rt.Snapshot {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Fprintln(out, headerStyle.Render("Current Configuration:"))
			for _, k := range keys {
				e := rt.Snapshot[k]
				fmt.Fprintf(out, "%-18s %-40s %s\n", k, displayValue(e), mutedStyle.Render(source(e)))
			}
			return nil
		},
	}
}

func displayValue(e configdomain.Entry) string {
	if e.Key == configdomain.KeyToken {
		s, _ := e.Value.(string)
		return maskToken(s)
	}
	return fmt.Sprint(e.Value)
}

func source(e configdomain.Entry) string {
	if e.SourcePath == "" {
		return "(" + e.Source + ")"
	}
	return fmt.Sprintf("(%s: %s)", e.Source, e.SourcePath)
}

// maskToken masks the token for display
func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
