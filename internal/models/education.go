package models

// Education represents a degree or course of study
type Education struct {
	ID           int     `json:"id"`
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldOfStudy,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate,omitempty"`
	Grade        string  `json:"grade,omitempty"`
	Description  string  `json:"description,omitempty"`
	GPA          float64 `json:"gpa,omitempty"`
	IsActive     bool    `json:"isActive"`
	DisplayOrder int     `json:"displayOrder"`
}

// EducationInput is the body of create and update education requests
type EducationInput struct {
	Institution  string  `json:"institution"`
	Degree       string  `json:"degree"`
	FieldOfStudy string  `json:"fieldOfStudy,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate,omitempty"`
	Grade        string  `json:"grade,omitempty"`
	Description  string  `json:"description,omitempty"`
	GPA          float64 `json:"gpa,omitempty"`
	IsActive     bool    `json:"isActive"`
	DisplayOrder int     `json:"displayOrder"`
}
