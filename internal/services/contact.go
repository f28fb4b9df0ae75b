package services

import (
	"context"
	"fmt"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// The controller is ContactMessagesController, routed as "contactmessages"
const contactEndpoint = "contactmessages"

// ContactService talks to the /contactmessages resource
type ContactService struct {
	client *apiclient.Client
}

func NewContactService(client *apiclient.Client) *ContactService {
	return &ContactService{client: client}
}

// Send submits a visitor's contact form
func (s *ContactService) Send(ctx context.Context, input models.ContactMessageInput) (*models.ContactMessage, error) {
	return apiclient.Fetch[*models.ContactMessage](ctx, s.client, http.MethodPost, contactEndpoint, input)
}

// GetAll returns every message (admin)
func (s *ContactService) GetAll(ctx context.Context) ([]models.ContactMessage, error) {
	return apiclient.Fetch[[]models.ContactMessage](ctx, s.client, http.MethodGet, contactEndpoint, nil)
}

// GetUnread returns the messages not yet marked as read (admin)
func (s *ContactService) GetUnread(ctx context.Context) ([]models.ContactMessage, error) {
	return apiclient.Fetch[[]models.ContactMessage](ctx, s.client, http.MethodGet, contactEndpoint+"/unread", nil)
}

func (s *ContactService) GetByID(ctx context.Context, id int) (*models.ContactMessage, error) {
	return apiclient.Fetch[*models.ContactMessage](ctx, s.client, http.MethodGet, fmt.Sprintf("%s/%d", contactEndpoint, id), nil)
}

func (s *ContactService) MarkAsRead(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("%s/%d/read", contactEndpoint, id), nil)
}

func (s *ContactService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", contactEndpoint, id))
}
