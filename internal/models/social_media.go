package models

// SocialMediaLink is a link to one of the owner's profiles
type SocialMediaLink struct {
	ID           int    `json:"id"`
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	IconClass    string `json:"iconClass,omitempty"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

// SocialMediaInput is the body of create and update social media requests
type SocialMediaInput struct {
	Platform     string `json:"platform"`
	URL          string `json:"url"`
	IconClass    string `json:"iconClass,omitempty"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}
