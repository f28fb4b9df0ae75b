package models

// Experience represents a position in the work history
type Experience struct {
	ID           int    `json:"id"`
	JobTitle     string `json:"jobTitle"`
	CompanyName  string `json:"companyName"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	IsCurrent    bool   `json:"isCurrent"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

// ExperienceInput is the body of create and update experience requests
type ExperienceInput struct {
	JobTitle     string `json:"jobTitle"`
	CompanyName  string `json:"companyName"`
	Location     string `json:"location,omitempty"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate,omitempty"`
	IsCurrent    bool   `json:"isCurrent"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}
