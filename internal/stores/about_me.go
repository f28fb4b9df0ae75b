package stores

import (
	"context"

	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
)

// AboutMeStore holds the owner's profile
type AboutMeStore struct {
	*Cache[*models.AboutMe]
	svc *services.AboutMeService
}

func NewAboutMeStore(svc *services.AboutMeService, opts ...Option) *AboutMeStore {
	return &AboutMeStore{
		Cache: NewObject[models.AboutMe](named(opts, NameAboutMe)...),
		svc:   svc,
	}
}

func (s *AboutMeStore) Fetch(ctx context.Context) State[*models.AboutMe] {
	return s.FetchOnce(ctx, s.svc.Get, `Failed to fetch "About Me" data.`)
}

// Update saves the profile and replaces the cached copy with what the backend returned
func (s *AboutMeStore) Update(ctx context.Context, input models.AboutMeInput) error {
	return s.Mutate(ctx, func(ctx context.Context) error {
		saved, err := s.svc.CreateOrUpdate(ctx, input)
		if err != nil {
			return err
		}
		s.Cache.Update(func(*models.AboutMe) *models.AboutMe { return saved })
		return nil
	}, `Failed to update "About Me" data.`)
}
