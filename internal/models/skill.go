package models

// DefaultSkillCategory is the bucket for skills that have no category
const DefaultSkillCategory = "Miscellaneous"

// Skill represents a skill shown in the skills section
type Skill struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Category     *string `json:"category"`
	Proficiency  int     `json:"proficiency"`
	IconURL      string  `json:"iconUrl,omitempty"`
	IsActive     bool    `json:"isActive"`
	DisplayOrder int     `json:"displayOrder"`
}

// CategoryName returns the skill's category, or DefaultSkillCategory when it has none
func (s Skill) CategoryName() string {
	if s.Category == nil || *s.Category == "" {
		return DefaultSkillCategory
	}
	return *s.Category
}

// SkillInput is the body of create and update skill requests
type SkillInput struct {
	Name         string  `json:"name"`
	Category     *string `json:"category"`
	Proficiency  int     `json:"proficiency"`
	IconURL      string  `json:"iconUrl,omitempty"`
	IsActive     bool    `json:"isActive"`
	DisplayOrder int     `json:"displayOrder"`
}

// SkillOrder maps skill IDs to their new display order, e.g. {1: 0, 2: 1}
type SkillOrder map[int]int
