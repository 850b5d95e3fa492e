package cli

import (
	"github.com/spf13/cobra"
)

func newParkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "park <park-id>",
		Short: "List notes for a park",
		Long:  "List all notes left on a park, oldest first.",
		Args:  cobra.ExactArgs(1),
		RunE:  runPark,
	}
}

func runPark(cmd *cobra.Command, args []string) error {
	parkID, err := parseID("park", args[0])
	if err != nil {
		return err
	}

	groups, err := newAPIClient().ListForPark(parkID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(groups)
	}

	printGroups(groups)
	return nil
}
