package tasks

import (
	"context"
	"sync"

	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
)

// WarmTaskDef fetches the payload of one public store so it can be written to the
// shared cache under the key that store reads
type WarmTaskDef struct {
	name  string
	fetch TaskHandler
}

// TaskID returns the store name the task warms
func (t *WarmTaskDef) TaskID() string {
	return t.name
}

// HandleExecution fetches the payload
func (t *WarmTaskDef) HandleExecution(ctx context.Context, set *services.Set) (interface{}, error) {
	return t.fetch(ctx, set)
}

// WarmTasks lists one task per public store payload
var WarmTasks = []*WarmTaskDef{
	{stores.NameAboutMe, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.AboutMe.Get(ctx)
	}},
	{stores.NameCertifications, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Certifications.GetActive(ctx)
	}},
	{stores.NameEducation, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Education.GetActive(ctx)
	}},
	{stores.NameExperiences, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Experiences.GetActive(ctx)
	}},
	{stores.NameProjectsActive, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Projects.GetActive(ctx)
	}},
	{stores.NameProjectsFeatured, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Projects.GetFeatured(ctx)
	}},
	{stores.NameSiteSettings, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.SiteSettings.GetDictionary(ctx)
	}},
	{stores.NameSkills, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Skills.GetActive(ctx)
	}},
	{stores.NameSocialMedia, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.SocialMedia.GetActive(ctx)
	}},
	{stores.NameTechnologies, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Technologies.GetActive(ctx)
	}},
	{stores.NameTestimonials, func(ctx context.Context, set *services.Set) (interface{}, error) {
		return set.Testimonials.GetActive(ctx)
	}},
}

var defineOnce sync.Once

// DefineTasks registers all available tasks to the global registry
func DefineTasks() {
	defineOnce.Do(func() {
		for _, task := range WarmTasks {
			RegisterHandler(task.TaskID(), task.HandleExecution)
		}
	})
}
