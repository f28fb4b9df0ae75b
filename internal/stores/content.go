package stores

import (
	"context"

	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
)

// Names of the store payloads in the shared cache
const (
	NameAboutMe          = "aboutme"
	NameCertifications   = "certifications.active"
	NameEducation        = "education.active"
	NameExperiences      = "experiences.active"
	NameProjectsActive   = "projects.active"
	NameProjectsFeatured = "projects.featured"
	NameSiteSettings     = "settings.dictionary"
	NameSkills           = "skills.active"
	NameSocialMedia      = "socialmedia.active"
	NameTechnologies     = "technologies.active"
	NameTestimonials     = "testimonials.active"
)

// CertificationsStore holds the active certifications
type CertificationsStore struct {
	*Cache[[]models.Certification]
	svc *services.CertificationsService
}

func NewCertificationsStore(svc *services.CertificationsService, opts ...Option) *CertificationsStore {
	return &CertificationsStore{
		Cache: NewList[models.Certification](named(opts, NameCertifications)...),
		svc:   svc,
	}
}

func (s *CertificationsStore) FetchActive(ctx context.Context) State[[]models.Certification] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch certifications.")
}

// EducationStore holds the education history
type EducationStore struct {
	*Cache[[]models.Education]
	svc *services.EducationService
}

func NewEducationStore(svc *services.EducationService, opts ...Option) *EducationStore {
	return &EducationStore{
		Cache: NewList[models.Education](named(opts, NameEducation)...),
		svc:   svc,
	}
}

func (s *EducationStore) FetchActive(ctx context.Context) State[[]models.Education] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch education history.")
}

// ExperiencesStore holds the active work experience
type ExperiencesStore struct {
	*Cache[[]models.Experience]
	svc *services.ExperiencesService
}

func NewExperiencesStore(svc *services.ExperiencesService, opts ...Option) *ExperiencesStore {
	return &ExperiencesStore{
		Cache: NewList[models.Experience](named(opts, NameExperiences)...),
		svc:   svc,
	}
}

func (s *ExperiencesStore) FetchActive(ctx context.Context) State[[]models.Experience] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch experiences.")
}

// SocialMediaStore holds the active social media links
type SocialMediaStore struct {
	*Cache[[]models.SocialMediaLink]
	svc *services.SocialMediaService
}

func NewSocialMediaStore(svc *services.SocialMediaService, opts ...Option) *SocialMediaStore {
	return &SocialMediaStore{
		Cache: NewList[models.SocialMediaLink](named(opts, NameSocialMedia)...),
		svc:   svc,
	}
}

func (s *SocialMediaStore) FetchActive(ctx context.Context) State[[]models.SocialMediaLink] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch social media links.")
}

// TechnologiesStore holds the active technologies
type TechnologiesStore struct {
	*Cache[[]models.Technology]
	svc *services.TechnologiesService
}

func NewTechnologiesStore(svc *services.TechnologiesService, opts ...Option) *TechnologiesStore {
	return &TechnologiesStore{
		Cache: NewList[models.Technology](named(opts, NameTechnologies)...),
		svc:   svc,
	}
}

func (s *TechnologiesStore) FetchActive(ctx context.Context) State[[]models.Technology] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch active technologies.")
}

// Messages shown after a visitor testimonial submission
const (
	TestimonialSuccessMessage = "Thank you! Your testimonial will appear once it has been approved."
	TestimonialFailedMessage  = "Failed to submit testimonial."
)

// TestimonialsStore holds the approved testimonials and accepts new ones
type TestimonialsStore struct {
	*Cache[[]models.Testimonial]
	svc *services.TestimonialsService
}

func NewTestimonialsStore(svc *services.TestimonialsService, opts ...Option) *TestimonialsStore {
	return &TestimonialsStore{
		Cache: NewList[models.Testimonial](named(opts, NameTestimonials)...),
		svc:   svc,
	}
}

func (s *TestimonialsStore) FetchActive(ctx context.Context) State[[]models.Testimonial] {
	return s.FetchOnce(ctx, s.svc.GetActive, "Failed to fetch testimonials.")
}

// Submit sends a visitor testimonial and returns the backend's error. It is not listed
// until an admin approves it, so the cached list and its error slot are left alone.
func (s *TestimonialsStore) Submit(ctx context.Context, input models.TestimonialInput) error {
	if _, err := s.svc.Create(ctx, input); err != nil {
		s.logger.Warn("testimonial not submitted", zap.String("error", apiclient.Message(err, TestimonialFailedMessage)))
		return err
	}
	return nil
}
