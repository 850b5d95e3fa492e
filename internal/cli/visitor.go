package cli

import (
	"github.com/spf13/cobra"
)

func newVisitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visitor <visitor-id>",
		Short: "List notes by a visitor",
		Args:  cobra.ExactArgs(1),
		RunE:  runVisitor,
	}
}

func runVisitor(cmd *cobra.Command, args []string) error {
	visitorID, err := parseID("visitor", args[0])
	if err != nil {
		return err
	}

	notes, err := newAPIClient().ListForVisitor(visitorID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(notes)
	}

	return printVisitorNotes(notes)
}
