package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// SiteSettingsService talks to the /SiteSettings resource
type SiteSettingsService struct {
	client *apiclient.Client
}

func NewSiteSettingsService(client *apiclient.Client) *SiteSettingsService {
	return &SiteSettingsService{client: client}
}

// GetDictionary returns every setting as a key/value map. This is what the pages use.
func (s *SiteSettingsService) GetDictionary(ctx context.Context) (map[string]string, error) {
	return apiclient.Fetch[map[string]string](ctx, s.client, http.MethodGet, "/SiteSettings/dictionary", nil)
}

func (s *SiteSettingsService) GetAll(ctx context.Context) ([]models.SiteSetting, error) {
	return apiclient.Fetch[[]models.SiteSetting](ctx, s.client, http.MethodGet, "/SiteSettings", nil)
}

func (s *SiteSettingsService) GetByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	return apiclient.Fetch[*models.SiteSetting](ctx, s.client, http.MethodGet, "/SiteSettings/key/"+url.PathEscape(key), nil)
}

func (s *SiteSettingsService) Create(ctx context.Context, input models.SiteSettingInput) (*models.SiteSetting, error) {
	return apiclient.Fetch[*models.SiteSetting](ctx, s.client, http.MethodPost, "/SiteSettings", input)
}

func (s *SiteSettingsService) Update(ctx context.Context, id int, input models.SiteSettingInput) (*models.SiteSetting, error) {
	return apiclient.Fetch[*models.SiteSetting](ctx, s.client, http.MethodPut, fmt.Sprintf("/SiteSettings/%d", id), input)
}

func (s *SiteSettingsService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/SiteSettings/%d", id))
}
