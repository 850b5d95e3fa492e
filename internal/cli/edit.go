package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/park-notes/internal/web"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `edit <id> <visitor-id> "title" [body...]`,
		Short: "Edit a note",
		Long:  "Replace a note's visitor, title, and body. The park and date cannot change.",
		Args:  cobra.MinimumNArgs(3),
		RunE:  runEdit,
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID("note", args[0])
	if err != nil {
		return err
	}
	visitorID, err := parseID("visitor", args[1])
	if err != nil {
		return err
	}

	req := web.UpdateRequest{
		VisitorID: visitorID,
		Title:     strings.TrimSpace(args[2]),
		Body:      strings.Join(args[3:], " "),
	}
	if err := newAPIClient().UpdateNote(id, req); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(web.IDResponse{ID: id})
	}

	fmt.Printf("Note #%d updated.\n", id)
	return nil
}
