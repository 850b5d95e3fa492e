// Package cli defines the cobra command tree for park-notes.
package cli

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evcraddock/park-notes/internal/client"
	"github.com/evcraddock/park-notes/internal/db"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pn",
		Short:         "Leave and browse notes about parks",
		Long:          "A tool to leave short notes about parks, group them by park, filter them by visitor, and search them, via CLI or the notes API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path used by serve (default: ~/.config/pn/notes.db)")

	root.AddCommand(
		newAddCmd(),
		newShowCmd(),
		newEditCmd(),
		newRemoveCmd(),
		newParkCmd(),
		newListCmd(),
		newVisitorCmd(),
		newSearchCmd(),
		newCheckCmd(),
		newServeCmd(),
		newConfigCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database using the --db flag or default path.
// Used by the serve command to seed and persist the store.
func openDB() (*sql.DB, error) {
	path := flagDB
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAPIClient creates an HTTP client for the notes API.
func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}

// parseID parses a numeric id argument; what names it in the error.
func parseID(what, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID: %s", what, arg)
	}
	return id, nil
}
