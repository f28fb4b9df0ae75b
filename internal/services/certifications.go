package services

import (
	"context"
	"fmt"
	"net/http"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

const certificationsEndpoint = "certifications"

// CertificationsService talks to the /certifications resource
type CertificationsService struct {
	client *apiclient.Client
}

func NewCertificationsService(client *apiclient.Client) *CertificationsService {
	return &CertificationsService{client: client}
}

// GetActive returns the active certifications (public)
func (s *CertificationsService) GetActive(ctx context.Context) ([]models.Certification, error) {
	return apiclient.Fetch[[]models.Certification](ctx, s.client, http.MethodGet, certificationsEndpoint, nil)
}

// GetAll returns every certification (admin)
func (s *CertificationsService) GetAll(ctx context.Context) ([]models.Certification, error) {
	return apiclient.Fetch[[]models.Certification](ctx, s.client, http.MethodGet, certificationsEndpoint+"/all", nil)
}

func (s *CertificationsService) GetByID(ctx context.Context, id int) (*models.Certification, error) {
	return apiclient.Fetch[*models.Certification](ctx, s.client, http.MethodGet, fmt.Sprintf("%s/%d", certificationsEndpoint, id), nil)
}

func (s *CertificationsService) Create(ctx context.Context, input models.CertificationInput) (*models.Certification, error) {
	return apiclient.Fetch[*models.Certification](ctx, s.client, http.MethodPost, certificationsEndpoint, input)
}

func (s *CertificationsService) Update(ctx context.Context, id int, input models.CertificationInput) (*models.Certification, error) {
	return apiclient.Fetch[*models.Certification](ctx, s.client, http.MethodPut, fmt.Sprintf("%s/%d", certificationsEndpoint, id), input)
}

func (s *CertificationsService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", certificationsEndpoint, id))
}

func (s *CertificationsService) ToggleActive(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("%s/%d/toggle-active", certificationsEndpoint, id), nil)
}
