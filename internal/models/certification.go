package models

// Certification represents a certificate earned from an issuing organization
type Certification struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuingOrganization"`
	IssueDate           string `json:"issueDate"`
	ExpirationDate      string `json:"expirationDate,omitempty"`
	CredentialID        string `json:"credentialId,omitempty"`
	CredentialURL       string `json:"credentialUrl,omitempty"`
	ImageURL            string `json:"imageUrl,omitempty"`
	IsActive            bool   `json:"isActive"`
	DisplayOrder        int    `json:"displayOrder"`
}

// CertificationInput is the body of create and update certification requests
type CertificationInput struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuingOrganization"`
	IssueDate           string `json:"issueDate"`
	ExpirationDate      string `json:"expirationDate,omitempty"`
	CredentialID        string `json:"credentialId,omitempty"`
	CredentialURL       string `json:"credentialUrl,omitempty"`
	ImageURL            string `json:"imageUrl,omitempty"`
	IsActive            bool   `json:"isActive"`
	DisplayOrder        int    `json:"displayOrder"`
}
