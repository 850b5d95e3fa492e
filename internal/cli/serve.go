package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/evcraddock/park-notes/internal/comment"
	"github.com/evcraddock/park-notes/internal/logging"
	"github.com/evcraddock/park-notes/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the notes API",
		Long:  "Start an HTTP server for the notes API. Notes are loaded from the database at startup and saved back after every change.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	srv, err := newServer(comment.NewRepository(database))
	if err != nil {
		return err
	}

	return srv.ListenAndServe(port)
}

// newServer seeds a store from repo and returns a server that saves to it.
func newServer(repo *comment.Repository) (*web.Server, error) {
	seed, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}
	slog.Info("loaded notes", "count", len(seed))

	return web.NewServer(comment.NewStore(seed), repo), nil
}
