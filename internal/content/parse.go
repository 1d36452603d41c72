package content

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Format tells how a stored field value is encoded.
type Format int

const (
	// FormatEmpty is a missing or whitespace-only value.
	FormatEmpty Format = iota
	// FormatStructured is JSON in the canonical shape of the field.
	FormatStructured
	// FormatLegacy is free text written before the structured editors.
	FormatLegacy
)

func (f Format) String() string {
	switch f {
	case FormatStructured:
		return "structured"
	case FormatLegacy:
		return "legacy"
	default:
		return "empty"
	}
}

// stored is a raw field value resolved once into Structured or Legacy.
// Exactly one of value (structured) or text (legacy) is meaningful.
type stored struct {
	format Format
	value  any
	text   string
}

const bom = "\ufeff"

func delimiter(f Field) byte {
	if f == FieldDescription {
		return '{'
	}
	return '['
}

func classify(f Field, raw string) stored {
	text := strings.TrimPrefix(raw, bom)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return stored{format: FormatEmpty}
	}
	if trimmed[0] != delimiter(f) {
		return stored{format: FormatLegacy, text: text}
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return stored{format: FormatLegacy, text: text}
	}
	// Trailing garbage after the JSON value means the text only looked structured.
	if _, err := dec.Token(); err != io.EOF {
		return stored{format: FormatLegacy, text: text}
	}
	return stored{format: FormatStructured, value: v}
}

// Detect reports how raw is encoded for field f without building a model.
func Detect(f Field, raw string) Format {
	return classify(f, raw).format
}

// Parse turns a stored value into the canonical model of f. It never fails:
// anything that does not decode is read as legacy text.
func Parse(f Field, raw string) Model {
	switch f {
	case FieldRequirements:
		return ParseRequirements(raw)
	case FieldBenefits:
		return ParseBenefits(raw)
	default:
		return ParseDescription(raw)
	}
}

// ParseJob parses all three fields of a posting.
func ParseJob(description, requirements, benefits string) Job {
	return Job{
		Description:  ParseDescription(description),
		Requirements: ParseRequirements(requirements),
		Benefits:     ParseBenefits(benefits),
	}
}

func ParseDescription(raw string) Description {
	s := classify(FieldDescription, raw)
	switch s.format {
	case FormatEmpty:
		return DefaultDescription()
	case FormatLegacy:
		return Description{Intro: s.text, Points: []string{}}
	}

	switch v := s.value.(type) {
	case string:
		return Description{Intro: v, Points: []string{}}
	case map[string]any:
		d := Description{Intro: stringify(v["intro"])}
		switch points := v["points"].(type) {
		case nil:
		case []any:
			d.Points = stringifyAll(points)
		default:
			d.Points = []string{stringify(points)}
		}
		return NormalizeDescription(d)
	default:
		return Description{Intro: strings.TrimPrefix(raw, bom), Points: []string{}}
	}
}

func ParseRequirements(raw string) Requirements {
	s := classify(FieldRequirements, raw)
	switch s.format {
	case FormatEmpty:
		return DefaultRequirements()
	case FormatLegacy:
		return Requirements(splitLines(s.text))
	}

	if items, ok := s.value.([]any); ok {
		return NormalizeRequirements(stringifyAll(items))
	}
	return NormalizeRequirements(Requirements{stringify(s.value)})
}

func ParseBenefits(raw string) Benefits {
	s := classify(FieldBenefits, raw)
	if s.format != FormatStructured {
		return DefaultBenefits()
	}

	items, ok := s.value.([]any)
	if !ok {
		return DefaultBenefits()
	}
	out := make(Benefits, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, Benefit{Icon: stringify(v["icon"]), Text: stringify(v["text"])})
		default:
			out = append(out, Benefit{Text: stringify(v)})
		}
	}
	return NormalizeBenefits(out)
}

// splitLines recovers one requirement per non-blank line of legacy text.
func splitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func stringifyAll(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, stringify(item))
	}
	return out
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(x); err != nil {
			return ""
		}
		return strings.TrimSuffix(buf.String(), "\n")
	}
}
