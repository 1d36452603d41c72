package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is a job posting ready to be drawn.
type Page struct {
	JobID    string
	Title    string
	Company  string
	Location string
	Salary   string
	View     View
}

// SectionLabels are the headings printed above requirements and benefits.
type SectionLabels struct {
	Requirements string
	Benefits     string
}

var defaultLabels = SectionLabels{Requirements: "Yêu cầu ứng viên", Benefits: "Quyền lợi"}

func Labels() SectionLabels { return defaultLabels }

type pageData struct {
	Page
	Surface Surface
	Labels  SectionLabels
}

// glyphHTML wraps a glyph name in the markup its surface expects.
func glyphHTML(surface, name, role string) template.HTML {
	name = template.HTMLEscapeString(name)
	role = template.HTMLEscapeString(role)
	switch surface {
	case Admin.Name:
		return template.HTML(fmt.Sprintf(`<span class="material-icons glyph-%s">%s</span>`, role, name))
	case Web.Name:
		return template.HTML(fmt.Sprintf(`<i class="fa-solid %s glyph-%s" aria-hidden="true"></i>`, name, role))
	default:
		return template.HTML(name)
	}
}

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{"glyph": glyphHTML}).ParseFS(templateFS, "templates/*.html"),
)

// HTML writes the page for the admin or web surface.
func HTML(w io.Writer, s Surface, p Page) error {
	var name string
	switch s.Name {
	case Admin.Name:
		name = "admin.html"
	case Web.Name:
		name = "web.html"
	default:
		return fmt.Errorf("surface %q has no HTML template", s.Name)
	}
	if err := templates.ExecuteTemplate(w, name, pageData{Page: p, Surface: s, Labels: defaultLabels}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
