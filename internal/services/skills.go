package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

// SkillsService talks to the /skills resource
type SkillsService struct {
	client *apiclient.Client
}

func NewSkillsService(client *apiclient.Client) *SkillsService {
	return &SkillsService{client: client}
}

// GetActive returns the active skills for the public site
func (s *SkillsService) GetActive(ctx context.Context) ([]models.Skill, error) {
	return apiclient.Fetch[[]models.Skill](ctx, s.client, http.MethodGet, "/skills/active", nil)
}

// GetByCategory returns the active skills of one category
func (s *SkillsService) GetByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	return apiclient.Fetch[[]models.Skill](ctx, s.client, http.MethodGet, "/skills/category/"+url.PathEscape(category), nil)
}

// GetAllAdmin returns every skill, active or not
func (s *SkillsService) GetAllAdmin(ctx context.Context) ([]models.Skill, error) {
	return apiclient.Fetch[[]models.Skill](ctx, s.client, http.MethodGet, "/skills", nil)
}

func (s *SkillsService) GetByID(ctx context.Context, id int) (*models.Skill, error) {
	return apiclient.Fetch[*models.Skill](ctx, s.client, http.MethodGet, fmt.Sprintf("/skills/%d", id), nil)
}

func (s *SkillsService) Create(ctx context.Context, input models.SkillInput) (*models.Skill, error) {
	return apiclient.Fetch[*models.Skill](ctx, s.client, http.MethodPost, "/skills", input)
}

func (s *SkillsService) Update(ctx context.Context, id int, input models.SkillInput) (*models.Skill, error) {
	return apiclient.Fetch[*models.Skill](ctx, s.client, http.MethodPut, fmt.Sprintf("/skills/%d", id), input)
}

func (s *SkillsService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/skills/%d", id))
}

func (s *SkillsService) ToggleActive(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("/skills/%d/toggle-active", id), nil)
}

// Reorder sets the display order of several skills at once
func (s *SkillsService) Reorder(ctx context.Context, order models.SkillOrder) error {
	return s.client.Post(ctx, "/skills/reorder", order, nil)
}
