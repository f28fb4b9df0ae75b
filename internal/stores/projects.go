package stores

import (
	"context"
	"fmt"

	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
)

// ProjectsStore holds the active and featured project lists and the last project
// fetched by id
type ProjectsStore struct {
	svc      *services.ProjectsService
	active   *Cache[[]models.Project]
	featured *Cache[[]models.Project]
	selected *Cache[*models.ProjectDetails]
}

func NewProjectsStore(svc *services.ProjectsService, opts ...Option) *ProjectsStore {
	return &ProjectsStore{
		svc:      svc,
		active:   NewList[models.Project](named(opts, NameProjectsActive)...),
		featured: NewList[models.Project](named(opts, NameProjectsFeatured)...),
		selected: NewObject[models.ProjectDetails](opts...),
	}
}

func (s *ProjectsStore) FetchActive(ctx context.Context) State[[]models.Project] {
	return s.active.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch active projects.")
}

func (s *ProjectsStore) FetchFeatured(ctx context.Context) State[[]models.Project] {
	return s.featured.FetchOnce(ctx, s.svc.GetFeatured, "Failed to fetch featured projects.")
}

// FetchByID always goes to the backend and clears the selected project first.
// The returned state is this call's result even if another id was requested meanwhile.
func (s *ProjectsStore) FetchByID(ctx context.Context, id int) State[*models.ProjectDetails] {
	return s.selected.Load(ctx, func(ctx context.Context) (*models.ProjectDetails, error) {
		return s.svc.GetByID(ctx, id)
	}, fmt.Sprintf("Failed to fetch project with id %d.", id))
}

func (s *ProjectsStore) Active() []models.Project {
	return s.active.Data()
}

func (s *ProjectsStore) Featured() []models.Project {
	return s.featured.Data()
}

func (s *ProjectsStore) Selected() *models.ProjectDetails {
	return s.selected.Data()
}

func (s *ProjectsStore) HasActiveData() bool {
	return s.active.HasData()
}

func (s *ProjectsStore) HasFeaturedData() bool {
	return s.featured.HasData()
}

// IsLoading reports whether any of the project fetches is running
func (s *ProjectsStore) IsLoading() bool {
	return s.active.IsLoading() || s.featured.IsLoading() || s.selected.IsLoading()
}

// Error returns the first recorded failure of the active, featured and selected fetches
func (s *ProjectsStore) Error() string {
	for _, msg := range []string{s.active.Err(), s.featured.Err(), s.selected.Err()} {
		if msg != "" {
			return msg
		}
	}
	return ""
}

// Reset forgets every cached project list
func (s *ProjectsStore) Reset() {
	s.active.Reset()
	s.featured.Reset()
	s.selected.Reset()
}
