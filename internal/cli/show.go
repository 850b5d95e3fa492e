package cli

import (
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Long:  "Show the full details of a note.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID("note", args[0])
	if err != nil {
		return err
	}

	v, err := newAPIClient().GetNote(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	printNote(v)
	return nil
}
