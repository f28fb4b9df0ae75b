package services

import "portfolio_web_echo/internal/apiclient"

// Set bundles one client per backend resource, all sharing the same apiclient.Client
type Set struct {
	AboutMe        *AboutMeService
	Certifications *CertificationsService
	Contact        *ContactService
	Education      *EducationService
	Experiences    *ExperiencesService
	Projects       *ProjectsService
	SiteSettings   *SiteSettingsService
	Skills         *SkillsService
	SocialMedia    *SocialMediaService
	Technologies   *TechnologiesService
	Testimonials   *TestimonialsService
}

// NewSet creates every resource client on top of client
func NewSet(client *apiclient.Client) *Set {
	return &Set{
		AboutMe:        NewAboutMeService(client),
		Certifications: NewCertificationsService(client),
		Contact:        NewContactService(client),
		Education:      NewEducationService(client),
		Experiences:    NewExperiencesService(client),
		Projects:       NewProjectsService(client),
		SiteSettings:   NewSiteSettingsService(client),
		Skills:         NewSkillsService(client),
		SocialMedia:    NewSocialMediaService(client),
		Technologies:   NewTechnologiesService(client),
		Testimonials:   NewTestimonialsService(client),
	}
}
