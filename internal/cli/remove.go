package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a note",
		Long:  "Remove a note. Removing a note that does not exist is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseID("note", args[0])
	if err != nil {
		return err
	}

	if err := newAPIClient().DeleteNote(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"nid":     id,
			"removed": true,
		})
	}

	fmt.Printf("Note #%d removed.\n", id)
	return nil
}
