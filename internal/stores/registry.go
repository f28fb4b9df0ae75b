package stores

import (
	"time"

	"go.uber.org/zap"

	"portfolio_web_echo/internal/services"
)

// Registry owns one instance of every store. Handlers share it for the life of the process.
type Registry struct {
	AboutMe        *AboutMeStore
	Certifications *CertificationsStore
	Contact        *ContactStore
	Education      *EducationStore
	Experiences    *ExperiencesStore
	Projects       *ProjectsStore
	SiteSettings   *SiteSettingsStore
	Skills         *SkillsStore
	SocialMedia    *SocialMediaStore
	Technologies   *TechnologiesStore
	Testimonials   *TestimonialsStore

	Messages   *MessagesStore
	Moderation *ModerationStore
}

// RegistryConfig configures NewRegistry. Shared may be nil.
type RegistryConfig struct {
	Logger    *zap.Logger
	Shared    services.KeyValueCache
	SharedTTL time.Duration
}

// NewRegistry creates every store on top of the resource clients in set
func NewRegistry(set *services.Set, cfg RegistryConfig) *Registry {
	opts := []Option{WithLogger(cfg.Logger)}
	if cfg.Shared != nil {
		opts = append(opts, WithShared(cfg.Shared, cfg.SharedTTL))
	}

	r := &Registry{
		AboutMe:        NewAboutMeStore(set.AboutMe, opts...),
		Certifications: NewCertificationsStore(set.Certifications, opts...),
		Contact:        NewContactStore(set.Contact, opts...),
		Education:      NewEducationStore(set.Education, opts...),
		Experiences:    NewExperiencesStore(set.Experiences, opts...),
		Projects:       NewProjectsStore(set.Projects, opts...),
		SiteSettings:   NewSiteSettingsStore(set.SiteSettings, opts...),
		Skills:         NewSkillsStore(set.Skills, opts...),
		SocialMedia:    NewSocialMediaStore(set.SocialMedia, opts...),
		Technologies:   NewTechnologiesStore(set.Technologies, opts...),
		Testimonials:   NewTestimonialsStore(set.Testimonials, opts...),
		Messages:       NewMessagesStore(set.Contact, opts...),
	}
	// An approved testimonial must show up on the next public fetch
	r.Moderation = NewModerationStore(set.Testimonials, r.Testimonials.Invalidate, opts...)
	return r
}
