package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/park-notes/internal/web"
)

func newAddCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   `add <park-id> <visitor-id> "title" [body...]`,
		Short: "Leave a note on a park",
		Long:  "Leave a note on a park. The body is optional; the date defaults to today.",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "note date (yyyy-MM-dd)")

	return cmd
}

func runAdd(args []string, date string) error {
	parkID, err := parseID("park", args[0])
	if err != nil {
		return err
	}
	visitorID, err := parseID("visitor", args[1])
	if err != nil {
		return err
	}

	title := strings.TrimSpace(args[2])
	if title == "" {
		return fmt.Errorf("note title is required")
	}

	c := newAPIClient()

	id, err := c.CreateNote(web.CreateRequest{
		LocationID: parkID,
		VisitorID:  visitorID,
		Date:       date,
		Title:      title,
		Body:       strings.Join(args[3:], " "),
	})
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(web.IDResponse{ID: id})
	}

	fmt.Printf("Note #%d added to park #%d.\n", id, parkID)
	return nil
}
