package editor

import (
	"go-jobboard/internal/content"
)

// DescriptionEditor edits an intro paragraph plus a list of points.
type DescriptionEditor struct {
	Intro  string
	Points *List[string]
}

// NewDescriptionEditor opens d for editing. An empty point list gets one
// empty row.
func NewDescriptionEditor(d content.Description, opts ...Option) *DescriptionEditor {
	d = content.Reseed(d).(content.Description)
	return &DescriptionEditor{
		Intro:  d.Intro,
		Points: NewList(d.Points, opts...),
	}
}

func (e *DescriptionEditor) SetIntro(intro string) {
	e.Intro = intro
}

func (e *DescriptionEditor) Model() content.Description {
	return content.Description{Intro: e.Intro, Points: e.Points.Values()}
}

// RequirementsEditor edits the requirement lines.
type RequirementsEditor struct {
	*List[string]
}

func NewRequirementsEditor(r content.Requirements, opts ...Option) *RequirementsEditor {
	r = content.Reseed(r).(content.Requirements)
	return &RequirementsEditor{List: NewList([]string(r), opts...)}
}

func (e *RequirementsEditor) Model() content.Requirements {
	return content.Requirements(e.Values())
}

// BenefitsEditor edits perks. Text edits keep whatever icon key the row
// already carries; the editor never picks an icon itself.
type BenefitsEditor struct {
	*List[content.Benefit]
}

func NewBenefitsEditor(b content.Benefits, opts ...Option) *BenefitsEditor {
	b = content.Reseed(b).(content.Benefits)
	return &BenefitsEditor{List: NewList([]content.Benefit(b), opts...)}
}

func (e *BenefitsEditor) SetText(i int, text string) error {
	return e.Update(i, func(b content.Benefit) content.Benefit {
		b.Text = text
		return b
	})
}

func (e *BenefitsEditor) SetIcon(i int, key string) error {
	return e.Update(i, func(b content.Benefit) content.Benefit {
		b.Icon = key
		return b
	})
}

func (e *BenefitsEditor) Model() content.Benefits {
	return content.Benefits(e.Values())
}
