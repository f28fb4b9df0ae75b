package models

// Project is the list shape returned by /Projects, /Projects/active, /Projects/featured
// and /Projects/type/{type}
type Project struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	ProjectType      string   `json:"projectType"`
	ImageURL         string   `json:"imageUrl,omitempty"`
	GitHubURL        string   `json:"githubUrl,omitempty"`
	LiveURL          string   `json:"liveUrl,omitempty"`
	Technologies     []string `json:"technologies,omitempty"`
	IsFeatured       bool     `json:"isFeatured"`
	IsActive         bool     `json:"isActive"`
	DisplayOrder     int      `json:"displayOrder"`
}

// ProjectDetails is the full project returned by /Projects/{id}
type ProjectDetails struct {
	Project
	Description string       `json:"description"`
	Challenges  string       `json:"challenges,omitempty"`
	Images      []string     `json:"images,omitempty"`
	StartDate   string       `json:"startDate,omitempty"`
	EndDate     string       `json:"endDate,omitempty"`
	ClientName  string       `json:"clientName,omitempty"`
	TechStack   []Technology `json:"techStack,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
}

// ProjectInput is the body of create and update project requests
type ProjectInput struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Description      string `json:"description"`
	ProjectType      string `json:"projectType"`
	ImageURL         string `json:"imageUrl,omitempty"`
	GitHubURL        string `json:"githubUrl,omitempty"`
	LiveURL          string `json:"liveUrl,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	TechnologyIDs    []int  `json:"technologyIds,omitempty"`
	IsFeatured       bool   `json:"isFeatured"`
	IsActive         bool   `json:"isActive"`
	DisplayOrder     int    `json:"displayOrder"`
}
