// Package content holds the canonical model of a job's rich text fields
// (description, requirements, benefits) and converts it to and from the text
// stored in the job record.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// Field names one of the three persisted job content columns.
type Field int

const (
	FieldDescription Field = iota
	FieldRequirements
	FieldBenefits
)

var ErrUnknownField = errors.New("unknown content field")

var fieldNames = map[Field]string{
	FieldDescription:  "description",
	FieldRequirements: "requirements",
	FieldBenefits:     "benefits",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a field name ("description", "requirements", "benefits")
// back to its Field.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Model is implemented by the canonical shape of every field.
type Model interface {
	Field() Field
	// Len is the number of rows an editor shows for the field.
	Len() int
}

// Description is an intro paragraph followed by bullet points.
type Description struct {
	Intro  string   `json:"intro"`
	Points []string `json:"points"`
}

func (Description) Field() Field { return FieldDescription }
func (d Description) Len() int   { return len(d.Points) }

// Requirements is an ordered list of requirement lines.
type Requirements []string

func (Requirements) Field() Field { return FieldRequirements }
func (r Requirements) Len() int   { return len(r) }

// Benefit is one perk. Icon is an advisory key for the icon resolver and
// is usually empty.
type Benefit struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Benefits is an ordered list of perks.
type Benefits []Benefit

func (Benefits) Field() Field { return FieldBenefits }
func (b Benefits) Len() int   { return len(b) }

// Job bundles the three content fields of one posting.
type Job struct {
	Description  Description
	Requirements Requirements
	Benefits     Benefits
}

// DefaultDescription is what an editor opens with when nothing is stored.
func DefaultDescription() Description {
	return Description{Points: []string{""}}
}

func DefaultRequirements() Requirements {
	return Requirements{""}
}

func DefaultBenefits() Benefits {
	return Benefits{{}}
}

// Default returns the one-empty-row model for f.
func Default(f Field) Model {
	switch f {
	case FieldRequirements:
		return DefaultRequirements()
	case FieldBenefits:
		return DefaultBenefits()
	default:
		return DefaultDescription()
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if blank(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Normalize drops empty and whitespace-only entries, the same filter
// Serialize applies before writing.
func Normalize(m Model) Model {
	switch v := m.(type) {
	case Description:
		return NormalizeDescription(v)
	case Requirements:
		return NormalizeRequirements(v)
	case Benefits:
		return NormalizeBenefits(v)
	default:
		return m
	}
}

func NormalizeDescription(d Description) Description {
	return Description{Intro: d.Intro, Points: compactStrings(d.Points)}
}

func NormalizeRequirements(r Requirements) Requirements {
	return Requirements(compactStrings(r))
}

func NormalizeBenefits(b Benefits) Benefits {
	out := make(Benefits, 0, len(b))
	for _, item := range b {
		if blank(item.Text) {
			continue
		}
		out = append(out, Benefit{Icon: strings.TrimSpace(item.Icon), Text: item.Text})
	}
	return out
}

// Reseed returns m with exactly one empty row when it has none, so a list
// editor always has a row to type into.
func Reseed(m Model) Model {
	if m.Len() > 0 {
		return m
	}
	switch v := m.(type) {
	case Description:
		return Description{Intro: v.Intro, Points: []string{""}}
	case Requirements:
		return DefaultRequirements()
	case Benefits:
		return DefaultBenefits()
	default:
		return m
	}
}
