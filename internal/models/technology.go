package models

// Technology is a tool or framework that projects are tagged with
type Technology struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	IconURL  string `json:"iconUrl,omitempty"`
	Color    string `json:"color,omitempty"`
	IsActive bool   `json:"isActive"`
}

// TechnologyInput is the body of create and update technology requests
type TechnologyInput struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	IconURL  string `json:"iconUrl,omitempty"`
	Color    string `json:"color,omitempty"`
	IsActive bool   `json:"isActive"`
}
