package main

import (
	"context"

	"github.com/spf13/cobra"

	"portfolio_web_echo/internal/models"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and manage projects",
	}

	cmd.AddCommand(
		listCmd(a, "list", "List every project", func(ctx context.Context) ([]models.Project, error) {
			return a.set.Projects.GetAll(ctx)
		}),
		listCmd(a, "active", "List the active projects", func(ctx context.Context) ([]models.Project, error) {
			return a.set.Projects.GetActive(ctx)
		}),
		listCmd(a, "featured", "List the featured projects", func(ctx context.Context) ([]models.Project, error) {
			return a.set.Projects.GetFeatured(ctx)
		}),
		idCmd("get", "Show one project", func(ctx context.Context, id int) error {
			p, err := a.set.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return a.print(p)
		}),
		&cobra.Command{
			Use:   "type <type>",
			Short: "List the projects of one type",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				projects, err := a.set.Projects.GetByType(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(projects)
			},
		},
		idCmd("toggle-active", "Flip the active flag of a project", func(ctx context.Context, id int) error {
			if err := a.set.Projects.ToggleActive(ctx, id); err != nil {
				return err
			}
			return a.done("project %d: active toggled", id)
		}),
		idCmd("toggle-featured", "Flip the featured flag of a project", func(ctx context.Context, id int) error {
			if err := a.set.Projects.ToggleFeatured(ctx, id); err != nil {
				return err
			}
			return a.done("project %d: featured toggled", id)
		}),
		idCmd("delete", "Delete a project", func(ctx context.Context, id int) error {
			if err := a.set.Projects.Delete(ctx, id); err != nil {
				return err
			}
			return a.done("project %d deleted", id)
		}),
	)
	return cmd
}
