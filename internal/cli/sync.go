package cli

import (
	"encoding/json"
	"fmt"

	"github.com/me/folio/pkg/model"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync projects from GitHub",
		Long:  "Trigger a GitHub repository sync on the server. Requires login.",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client.Post("/api/sync-github", nil)
			if err != nil {
				return fmt.Errorf("sync: %w", err)
			}

			var resp struct {
				Results []struct {
					Action  string         `json:"action"`
					Project *model.Project `json:"project"`
				} `json:"results"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			if len(resp.Results) == 0 {
				fmt.Println("Sync complete, nothing to update.")
				return nil
			}
			for _, r := range resp.Results {
				title := ""
				if r.Project != nil {
					title = r.Project.Title
				}
				fmt.Printf("%-8s  %s\n", r.Action, title)
			}
			fmt.Printf("Sync complete: %d projects.\n", len(resp.Results))
			return nil
		},
	}
}
