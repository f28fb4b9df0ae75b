package stores

import (
	"context"

	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
)

const (
	ContactSuccessMessage = "Your message has been sent successfully! I will get back to you soon."
	contactFailedMessage  = "An unexpected error occurred while sending your message."
)

// ContactStatus is the outcome of a contact form submission
type ContactStatus struct {
	Err     string
	Success string
}

// ContactStore sends the contact form. The outcome belongs to the submitting request,
// so nothing is kept between submissions.
type ContactStore struct {
	svc    *services.ContactService
	logger *zap.Logger
}

func NewContactStore(svc *services.ContactService, opts ...Option) *ContactStore {
	var o options
	o.logger = zap.NewNop()
	for _, opt := range opts {
		opt(&o)
	}
	return &ContactStore{svc: svc, logger: o.logger}
}

// Submit sends the message and reports whether it went through
func (s *ContactStore) Submit(ctx context.Context, input models.ContactMessageInput) (ContactStatus, bool) {
	var result ContactStatus
	if _, err := s.svc.Send(ctx, input); err != nil {
		result.Err = apiclient.Message(err, contactFailedMessage)
		s.logger.Warn("contact message not sent", zap.String("error", result.Err))
	} else {
		result.Success = ContactSuccessMessage
	}
	return result, result.Err == ""
}
