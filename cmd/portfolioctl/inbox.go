package main

import (
	"context"

	"github.com/spf13/cobra"

	"portfolio_web_echo/internal/models"
)

func newMessagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and triage contact messages",
	}

	cmd.AddCommand(
		listCmd(a, "list", "List every message", func(ctx context.Context) ([]models.ContactMessage, error) {
			return a.set.Contact.GetAll(ctx)
		}),
		listCmd(a, "unread", "List the unread messages", func(ctx context.Context) ([]models.ContactMessage, error) {
			return a.set.Contact.GetUnread(ctx)
		}),
		idCmd("get", "Show one message", func(ctx context.Context, id int) error {
			m, err := a.set.Contact.GetByID(ctx, id)
			if err != nil {
				return err
			}
			return a.print(m)
		}),
		idCmd("read", "Mark a message as read", func(ctx context.Context, id int) error {
			if err := a.set.Contact.MarkAsRead(ctx, id); err != nil {
				return err
			}
			return a.done("message %d marked as read", id)
		}),
		idCmd("delete", "Delete a message", func(ctx context.Context, id int) error {
			if err := a.set.Contact.Delete(ctx, id); err != nil {
				return err
			}
			return a.done("message %d deleted", id)
		}),
	)
	return cmd
}

func newTestimonialsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testimonials",
		Short: "Moderate testimonials",
	}

	cmd.AddCommand(
		listCmd(a, "pending", "List the testimonials waiting for approval", func(ctx context.Context) ([]models.Testimonial, error) {
			return a.set.Testimonials.GetPending(ctx)
		}),
		idCmd("approve", "Approve a testimonial", func(ctx context.Context, id int) error {
			if err := a.set.Testimonials.Approve(ctx, id); err != nil {
				return err
			}
			return a.done("testimonial %d approved", id)
		}),
		idCmd("reject", "Reject a testimonial", func(ctx context.Context, id int) error {
			if err := a.set.Testimonials.Reject(ctx, id); err != nil {
				return err
			}
			return a.done("testimonial %d rejected", id)
		}),
		idCmd("delete", "Delete a testimonial", func(ctx context.Context, id int) error {
			if err := a.set.Testimonials.Delete(ctx, id); err != nil {
				return err
			}
			return a.done("testimonial %d deleted", id)
		}),
	)
	return cmd
}
