// Package render turns job content into read-only views for the admin
// console, the public site and the mobile client.
package render

import (
	"strings"

	"go-jobboard/internal/content"
	"go-jobboard/internal/icon"
)

// Chip is one benefit badge.
type Chip struct {
	Icon icon.ID `json:"icon"`
	Text string  `json:"text"`
}

// View is what every surface draws: an intro paragraph, description
// points, requirement bullets and benefit chips. Empty sections are empty
// slices, never nil.
type View struct {
	Intro        string   `json:"intro"`
	Points       []string `json:"points"`
	Requirements []string `json:"requirements"`
	Benefits     []Chip   `json:"benefits"`
}

// Empty reports whether there is nothing to draw.
func (v View) Empty() bool {
	return strings.TrimSpace(v.Intro) == "" && len(v.Points) == 0 && len(v.Requirements) == 0 && len(v.Benefits) == 0
}

// Build derives a view from parsed content. job is not modified.
func Build(job content.Job) View {
	v := View{
		Intro:        strings.TrimSpace(job.Description.Intro),
		Points:       nonBlank(job.Description.Points),
		Requirements: nonBlank(job.Requirements),
		Benefits:     make([]Chip, 0, len(job.Benefits)),
	}
	for _, b := range job.Benefits {
		text := strings.TrimSpace(b.Text)
		if text == "" {
			continue
		}
		v.Benefits = append(v.Benefits, Chip{Icon: icon.Resolve(b.Icon, text), Text: text})
	}
	return v
}

// FromRaw parses stored column text and builds its view. Renderers call it
// on every read instead of caching models.
func FromRaw(description, requirements, benefits string) View {
	return Build(content.ParseJob(description, requirements, benefits))
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
