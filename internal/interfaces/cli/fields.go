package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFieldsCommand prints the field to wire key mapping.
func NewFieldsCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "Show form field names sent to the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderFields())
			return nil
		},
	}
}
