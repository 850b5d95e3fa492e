package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <note-id> <park-id>",
		Short: "Check whether a note belongs to a park",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	noteID, err := parseID("note", args[0])
	if err != nil {
		return err
	}
	parkID, err := parseID("park", args[1])
	if err != nil {
		return err
	}

	ok, err := newAPIClient().IsAssociated(noteID, parkID)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]bool{"associated": ok})
	}

	if ok {
		fmt.Printf("Note #%d belongs to park #%d.\n", noteID, parkID)
	} else {
		fmt.Printf("Note #%d does not belong to park #%d.\n", noteID, parkID)
	}
	return nil
}
