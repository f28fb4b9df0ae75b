package stores

import (
	"context"

	"portfolio_web_echo/internal/services"
)

// SiteSettingsStore holds the site settings dictionary
type SiteSettingsStore struct {
	*Cache[map[string]string]
	svc *services.SiteSettingsService
}

func NewSiteSettingsStore(svc *services.SiteSettingsService, opts ...Option) *SiteSettingsStore {
	return &SiteSettingsStore{
		Cache: NewDictionary[string, string](named(opts, NameSiteSettings)...),
		svc:   svc,
	}
}

func (s *SiteSettingsStore) Fetch(ctx context.Context) State[map[string]string] {
	return s.FetchOnce(ctx, s.svc.GetDictionary, "Failed to fetch site settings.")
}

// Setting returns one value of the dictionary, or "" when it is not set
func (s *SiteSettingsStore) Setting(key string) string {
	return s.Data()[key]
}
