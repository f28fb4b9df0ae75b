package stores

import (
	"context"

	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
)

// MessagesStore holds the unread contact messages for the admin area
type MessagesStore struct {
	*Cache[[]models.ContactMessage]
	svc *services.ContactService
}

func NewMessagesStore(svc *services.ContactService, opts ...Option) *MessagesStore {
	return &MessagesStore{
		Cache: NewList[models.ContactMessage](opts...),
		svc:   svc,
	}
}

// FetchUnread always reloads, new messages arrive at any time
func (s *MessagesStore) FetchUnread(ctx context.Context) State[[]models.ContactMessage] {
	return s.Load(ctx, s.svc.GetUnread, "Failed to fetch messages.")
}

// MarkRead marks a message as read and drops it from the unread list
func (s *MessagesStore) MarkRead(ctx context.Context, id int) error {
	err := s.Mutate(ctx, func(ctx context.Context) error {
		return s.svc.MarkAsRead(ctx, id)
	}, "Failed to mark message as read.")
	if err != nil {
		return err
	}
	s.Update(withoutMessage(id))
	return nil
}

func (s *MessagesStore) Delete(ctx context.Context, id int) error {
	err := s.Mutate(ctx, func(ctx context.Context) error {
		return s.svc.Delete(ctx, id)
	}, "Failed to delete message.")
	if err != nil {
		return err
	}
	s.Update(withoutMessage(id))
	return nil
}

func withoutMessage(id int) func([]models.ContactMessage) []models.ContactMessage {
	return func(list []models.ContactMessage) []models.ContactMessage {
		out := make([]models.ContactMessage, 0, len(list))
		for _, m := range list {
			if m.ID != id {
				out = append(out, m)
			}
		}
		return out
	}
}

// ModerationStore holds the testimonials waiting for approval
type ModerationStore struct {
	*Cache[[]models.Testimonial]
	svc *services.TestimonialsService

	// called after a testimonial was approved or rejected
	onChange func(ctx context.Context)
}

func NewModerationStore(svc *services.TestimonialsService, onChange func(ctx context.Context), opts ...Option) *ModerationStore {
	if onChange == nil {
		onChange = func(context.Context) {}
	}
	return &ModerationStore{
		Cache:    NewList[models.Testimonial](opts...),
		svc:      svc,
		onChange: onChange,
	}
}

// FetchPending always reloads the pending list
func (s *ModerationStore) FetchPending(ctx context.Context) State[[]models.Testimonial] {
	return s.Load(ctx, s.svc.GetPending, "Failed to fetch pending testimonials.")
}

func (s *ModerationStore) Approve(ctx context.Context, id int) error {
	return s.moderate(ctx, id, s.svc.Approve, "Failed to approve testimonial.")
}

func (s *ModerationStore) Reject(ctx context.Context, id int) error {
	return s.moderate(ctx, id, s.svc.Reject, "Failed to reject testimonial.")
}

func (s *ModerationStore) moderate(ctx context.Context, id int, op func(context.Context, int) error, fallback string) error {
	err := s.Mutate(ctx, func(ctx context.Context) error {
		return op(ctx, id)
	}, fallback)
	if err != nil {
		return err
	}
	s.Update(func(list []models.Testimonial) []models.Testimonial {
		out := make([]models.Testimonial, 0, len(list))
		for _, t := range list {
			if t.ID != id {
				out = append(out, t)
			}
		}
		return out
	})
	s.onChange(ctx)
	return nil
}
