package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [keyword...]",
		Short: "Search notes",
		Long:  "Search note titles and bodies, ignoring case. With no keyword, every note matches.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "))
		},
	}
}

func runSearch(keyword string) error {
	notes, err := newAPIClient().Search(keyword)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(notes)
	}

	return printSummaries(notes)
}
