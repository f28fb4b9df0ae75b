package services

import (
	"context"
	"fmt"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// TestimonialsService talks to the /testimonials resource
type TestimonialsService struct {
	client *apiclient.Client
}

func NewTestimonialsService(client *apiclient.Client) *TestimonialsService {
	return &TestimonialsService{client: client}
}

// GetActive returns the approved testimonials shown publicly
func (s *TestimonialsService) GetActive(ctx context.Context) ([]models.Testimonial, error) {
	return apiclient.Fetch[[]models.Testimonial](ctx, s.client, http.MethodGet, "/testimonials", nil)
}

// Create submits a visitor testimonial; it stays pending until approved
func (s *TestimonialsService) Create(ctx context.Context, input models.TestimonialInput) (*models.Testimonial, error) {
	return apiclient.Fetch[*models.Testimonial](ctx, s.client, http.MethodPost, "/testimonials", input)
}

func (s *TestimonialsService) GetAllAdmin(ctx context.Context) ([]models.Testimonial, error) {
	return apiclient.Fetch[[]models.Testimonial](ctx, s.client, http.MethodGet, "/testimonials/all", nil)
}

func (s *TestimonialsService) GetPending(ctx context.Context) ([]models.Testimonial, error) {
	return apiclient.Fetch[[]models.Testimonial](ctx, s.client, http.MethodGet, "/testimonials/pending", nil)
}

func (s *TestimonialsService) GetByID(ctx context.Context, id int) (*models.Testimonial, error) {
	return apiclient.Fetch[*models.Testimonial](ctx, s.client, http.MethodGet, fmt.Sprintf("/testimonials/%d", id), nil)
}

func (s *TestimonialsService) Update(ctx context.Context, id int, input models.TestimonialInput) (*models.Testimonial, error) {
	return apiclient.Fetch[*models.Testimonial](ctx, s.client, http.MethodPut, fmt.Sprintf("/testimonials/%d", id), input)
}

func (s *TestimonialsService) Approve(ctx context.Context, id int) error {
	return s.client.Post(ctx, fmt.Sprintf("/testimonials/%d/approve", id), nil, nil)
}

func (s *TestimonialsService) Reject(ctx context.Context, id int) error {
	return s.client.Post(ctx, fmt.Sprintf("/testimonials/%d/reject", id), nil, nil)
}

func (s *TestimonialsService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/testimonials/%d", id))
}
