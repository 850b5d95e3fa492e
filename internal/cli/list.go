package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Long:  "List every note, grouped by park.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	groups, err := newAPIClient().ListAll()
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(groups)
	}

	printGroups(groups)
	return nil
}
