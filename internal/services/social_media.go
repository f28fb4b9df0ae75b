package services

import (
	"context"
	"fmt"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

const socialMediaEndpoint = "socialmedia"

// SocialMediaService talks to the /socialmedia resource
type SocialMediaService struct {
	client *apiclient.Client
}

func NewSocialMediaService(client *apiclient.Client) *SocialMediaService {
	return &SocialMediaService{client: client}
}

// GetActive returns the links shown on the public site
func (s *SocialMediaService) GetActive(ctx context.Context) ([]models.SocialMediaLink, error) {
	return apiclient.Fetch[[]models.SocialMediaLink](ctx, s.client, http.MethodGet, socialMediaEndpoint+"/active", nil)
}

func (s *SocialMediaService) GetAll(ctx context.Context) ([]models.SocialMediaLink, error) {
	return apiclient.Fetch[[]models.SocialMediaLink](ctx, s.client, http.MethodGet, socialMediaEndpoint, nil)
}

func (s *SocialMediaService) GetByID(ctx context.Context, id int) (*models.SocialMediaLink, error) {
	return apiclient.Fetch[*models.SocialMediaLink](ctx, s.client, http.MethodGet, fmt.Sprintf("%s/%d", socialMediaEndpoint, id), nil)
}

func (s *SocialMediaService) Create(ctx context.Context, input models.SocialMediaInput) (*models.SocialMediaLink, error) {
	return apiclient.Fetch[*models.SocialMediaLink](ctx, s.client, http.MethodPost, socialMediaEndpoint, input)
}

func (s *SocialMediaService) Update(ctx context.Context, id int, input models.SocialMediaInput) (*models.SocialMediaLink, error) {
	return apiclient.Fetch[*models.SocialMediaLink](ctx, s.client, http.MethodPut, fmt.Sprintf("%s/%d", socialMediaEndpoint, id), input)
}

func (s *SocialMediaService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", socialMediaEndpoint, id))
}

func (s *SocialMediaService) ToggleActive(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("%s/%d/toggle-active", socialMediaEndpoint, id), nil)
}
