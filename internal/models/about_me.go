package models

// AboutMe is the owner's profile. The backend keeps a single record.
type AboutMe struct {
	ID              int    `json:"id"`
	FullName        string `json:"fullName"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	YearsExperience int    `json:"yearsOfExperience"`
}

// AboutMeInput is the body of the create-or-update request
type AboutMeInput struct {
	FullName        string `json:"fullName"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	YearsExperience int    `json:"yearsOfExperience"`
}
