package stores

import (
	"context"

	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
)

// SkillsStore holds the active skills
type SkillsStore struct {
	*Cache[[]models.Skill]
	svc *services.SkillsService
}

func NewSkillsStore(svc *services.SkillsService, opts ...Option) *SkillsStore {
	return &SkillsStore{
		Cache: NewList[models.Skill](named(opts, NameSkills)...),
		svc:   svc,
	}
}

func (s *SkillsStore) FetchActive(ctx context.Context) State[[]models.Skill] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch skills.")
}

// Grouped buckets the skills by category. Skills without one go to
// models.DefaultSkillCategory.
func (s *SkillsStore) Grouped() map[string][]models.Skill {
	return GroupSkills(s.Data())
}

// Categories lists the category names in the order they first appear
func (s *SkillsStore) Categories() []string {
	var names []string
	seen := make(map[string]bool)
	for _, skill := range s.Data() {
		name := skill.CategoryName()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// GroupSkills buckets skills by category, keeping their order within each bucket
func GroupSkills(skills []models.Skill) map[string][]models.Skill {
	groups := make(map[string][]models.Skill)
	for _, skill := range skills {
		name := skill.CategoryName()
		groups[name] = append(groups[name], skill)
	}
	return groups
}
