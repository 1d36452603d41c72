package render

import (
	"fmt"
	"strings"
)

// MobileItem is one row of a mobile list with its Ionicons name.
type MobileItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// MobileJob is the JSON the mobile client renders directly.
type MobileJob struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	Location     string       `json:"location"`
	Salary       string       `json:"salary"`
	Intro        string       `json:"intro"`
	Points       []MobileItem `json:"points"`
	Requirements []MobileItem `json:"requirements"`
	Benefits     []MobileItem `json:"benefits"`
}

func ForMobile(p Page) MobileJob {
	m := MobileJob{
		ID:           p.JobID,
		Title:        p.Title,
		Company:      p.Company,
		Location:     p.Location,
		Salary:       p.Salary,
		Intro:        p.View.Intro,
		Points:       make([]MobileItem, 0, len(p.View.Points)),
		Requirements: make([]MobileItem, 0, len(p.View.Requirements)),
		Benefits:     make([]MobileItem, 0, len(p.View.Benefits)),
	}
	for _, t := range p.View.Points {
		m.Points = append(m.Points, MobileItem{Icon: Mobile.PointGlyph, Text: t})
	}
	for _, t := range p.View.Requirements {
		m.Requirements = append(m.Requirements, MobileItem{Icon: Mobile.RequirementGlyph, Text: t})
	}
	for _, c := range p.View.Benefits {
		m.Benefits = append(m.Benefits, MobileItem{Icon: Mobile.Glyph(c.Icon), Text: c.Text})
	}
	return m
}

// PlainText renders a view for terminals.
func PlainText(p Page) string {
	var b strings.Builder
	if p.Title != "" {
		fmt.Fprintf(&b, "%s\n", p.Title)
	}
	if p.Company != "" {
		fmt.Fprintf(&b, "🏢 %s\n", p.Company)
	}
	if p.View.Intro != "" {
		fmt.Fprintf(&b, "\n%s\n", p.View.Intro)
	}
	for _, t := range p.View.Points {
		fmt.Fprintf(&b, "%s %s\n", Text.PointGlyph, t)
	}
	if len(p.View.Requirements) > 0 {
		fmt.Fprintf(&b, "\n%s:\n", defaultLabels.Requirements)
		for _, t := range p.View.Requirements {
			fmt.Fprintf(&b, "%s %s\n", Text.RequirementGlyph, t)
		}
	}
	if len(p.View.Benefits) > 0 {
		fmt.Fprintf(&b, "\n%s:\n", defaultLabels.Benefits)
		for _, c := range p.View.Benefits {
			fmt.Fprintf(&b, "%s %s\n", Text.Glyph(c.Icon), c.Text)
		}
	}
	return b.String()
}
