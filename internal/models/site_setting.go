package models

// SiteSetting is one key/value entry of the site configuration
type SiteSetting struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// SiteSettingInput is the body of create and update site setting requests
type SiteSettingInput struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Well-known setting keys read by the pages
const (
	SettingSiteName    = "SiteName"
	SettingTagline     = "Tagline"
	SettingContactMail = "ContactEmail"
	SettingFooterText  = "FooterText"
)
