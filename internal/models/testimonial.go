package models

// Testimonial is a client review. Only approved ones are listed publicly.
type Testimonial struct {
	ID             int    `json:"id"`
	ClientName     string `json:"clientName"`
	ClientTitle    string `json:"clientTitle,omitempty"`
	ClientCompany  string `json:"clientCompany,omitempty"`
	ClientImageURL string `json:"clientImageUrl,omitempty"`
	Content        string `json:"content"`
	Rating         int    `json:"rating"`
	IsApproved     bool   `json:"isApproved"`
	IsActive       bool   `json:"isActive"`
	DisplayOrder   int    `json:"displayOrder"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// TestimonialInput is the body of a visitor testimonial submission or an admin update
type TestimonialInput struct {
	ClientName     string `json:"clientName" form:"clientName"`
	ClientTitle    string `json:"clientTitle,omitempty" form:"clientTitle"`
	ClientCompany  string `json:"clientCompany,omitempty" form:"clientCompany"`
	ClientImageURL string `json:"clientImageUrl,omitempty" form:"clientImageUrl"`
	Content        string `json:"content" form:"content"`
	Rating         int    `json:"rating" form:"rating"`
}
