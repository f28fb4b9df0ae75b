package pages

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"portfolio_web_echo/internal/models"
)

// shortDate keeps the date part of the backend's ISO timestamps
func shortDate(s string) string {
	if len(s) >= 10 && s[4] == '-' {
		return s[:10]
	}
	return s
}

func stars(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " at " + b
}

// metaLine joins the non-empty parts with a middle dot
func metaLine(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}

// dateRange renders "start – end", or just start when end is empty
func dateRange(start, end string) string {
	if end == "" {
		return shortDate(start)
	}
	return shortDate(start) + " – " + shortDate(end)
}

func experienceMeta(exp models.Experience) string {
	end := exp.EndDate
	if exp.IsCurrent || end == "" {
		end = "Present"
	}
	return metaLine(exp.CompanyName, exp.Location, dateRange(exp.StartDate, end))
}

func educationTitle(edu models.Education) string {
	if edu.FieldOfStudy == "" {
		return edu.Degree
	}
	return edu.Degree + ", " + edu.FieldOfStudy
}

func clientLine(t models.Testimonial) string {
	if role := joinNonEmpty(t.ClientTitle, t.ClientCompany); role != "" {
		return t.ClientName + ", " + role
	}
	return t.ClientName
}

func projectMeta(p *models.ProjectDetails) string {
	var dates string
	if p.StartDate != "" {
		dates = dateRange(p.StartDate, p.EndDate)
	}
	return metaLine(p.ProjectType, p.ClientName, dates)
}

func projectURL(id int) templ.SafeURL {
	return templ.URL(fmt.Sprintf("/project/%d", id))
}

func techNames(p *models.ProjectDetails) []string {
	if len(p.TechStack) == 0 {
		return p.Technologies
	}
	names := make([]string, 0, len(p.TechStack))
	for _, t := range p.TechStack {
		names = append(names, t.Name)
	}
	return names
}

func messageMeta(m models.ContactMessage) string {
	return metaLine(m.Name+" <"+m.Email+">", m.Phone, shortDate(m.CreatedAt))
}

// techAttrs colours a technology tag when the backend gives it a colour
func techAttrs(tech models.Technology) templ.Attributes {
	if tech.Color == "" {
		return templ.Attributes{}
	}
	return templ.Attributes{"style": "border-color:" + tech.Color}
}
