package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection to the server",
		Long:  "Tests the connection to the notes API and reports how many notes it holds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	serverURL := getServerURL()

	fmt.Printf("Server:  %s\n", serverURL)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(serverURL + "/health")
	if err != nil {
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
		return nil
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Status:  ✗ unexpected response (%d)\n", resp.StatusCode)
		return nil
	}

	var health struct {
		Notes int `json:"notes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return fmt.Errorf("decoding health response: %w", err)
	}

	fmt.Println("Status:  ✓ connected")
	fmt.Printf("Notes:   %d\n", health.Notes)
	return nil
}
