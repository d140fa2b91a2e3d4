package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server health and session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client.Get("/api/health")
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}

			var health struct {
				Status    string `json:"status"`
				Version   string `json:"version"`
				GoVersion string `json:"go_version"`
				Uptime    string `json:"uptime"`
			}
			if err := json.Unmarshal(body, &health); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			fmt.Printf("Server:   %s\n", client.BaseURL)
			fmt.Printf("Status:   %s\n", health.Status)
			fmt.Printf("Version:  %s (%s)\n", health.Version, health.GoVersion)
			fmt.Printf("Uptime:   %s\n", health.Uptime)

			body, err = client.Get("/api/admin/check-auth")
			if err != nil {
				return fmt.Errorf("check auth: %w", err)
			}
			var authResp struct {
				Authenticated bool `json:"authenticated"`
				User          *struct {
					Username string `json:"username"`
				} `json:"user"`
			}
			if err := json.Unmarshal(body, &authResp); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			if authResp.Authenticated && authResp.User != nil {
				fmt.Printf("Session:  logged in as %s\n", authResp.User.Username)
			} else {
				fmt.Println("Session:  not logged in")
			}
			return nil
		},
	}
}
