package cli

import (
	"encoding/json"
	"fmt"

	"github.com/me/folio/pkg/model"
	"github.com/spf13/cobra"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage portfolio projects",
	}
	cmd.AddCommand(
		newProjectsListCmd(),
		newProjectsToggleCmd(),
		newProjectsDeleteCmd(),
	)
	return cmd
}

func newProjectsListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/projects"
			if all {
				path = "/api/admin/projects"
			}
			body, err := client.Get(path)
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			var resp struct {
				Projects []*model.Project `json:"projects"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			if len(resp.Projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("%-14s  %-30s  %-10s  %6s  %-7s\n", "ID", "TITLE", "CATEGORY", "STARS", "VISIBLE")
			fmt.Printf("%-14s  %-30s  %-10s  %6s  %-7s\n", "--", "-----", "--------", "-----", "-------")
			for _, p := range resp.Projects {
				title := p.Title
				if len(title) > 30 {
					title = title[:27] + "..."
				}
				visible := "no"
				if p.IsVisible {
					visible = "yes"
				}
				fmt.Printf("%-14s  %-30s  %-10s  %6d  %-7s\n", p.ID, title, p.Category, p.Stars, visible)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include hidden projects (requires login)")
	return cmd
}

func newProjectsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <project-id>",
		Short: "Toggle a project's visibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := client.Post("/api/projects/"+args[0]+"/toggle-visibility", nil)
			if err != nil {
				return fmt.Errorf("toggle project: %w", err)
			}

			var resp struct {
				Project *model.Project `json:"project"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			state := "hidden"
			if resp.Project != nil && resp.Project.IsVisible {
				state = "visible"
			}
			fmt.Printf("Project %s is now %s.\n", args[0], state)
			return nil
		},
	}
}

func newProjectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Delete("/api/projects/" + args[0]); err != nil {
				return fmt.Errorf("delete project: %w", err)
			}
			fmt.Printf("Project %s deleted.\n", args[0])
			return nil
		},
	}
}
