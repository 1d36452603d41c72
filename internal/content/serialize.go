package content

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Serialize encodes m in the structured format stored in the job record.
// Empty rows are dropped first, so Parse(m.Field(), Serialize(m)) equals
// Normalize(m).
func Serialize(m Model) string {
	switch v := m.(type) {
	case Description:
		return SerializeDescription(v)
	case Requirements:
		return SerializeRequirements(v)
	case Benefits:
		return SerializeBenefits(v)
	default:
		return ""
	}
}

func SerializeDescription(d Description) string {
	return encode(NormalizeDescription(d))
}

func SerializeRequirements(r Requirements) string {
	return encode([]string(NormalizeRequirements(r)))
}

// SerializeBenefits keeps each trimmed icon key so an edited benefit reads
// back with the icon it was given.
func SerializeBenefits(b Benefits) string {
	return encode([]Benefit(NormalizeBenefits(b)))
}

// SerializedJob is the stored text of all three fields.
type SerializedJob struct {
	Description  string
	Requirements string
	Benefits     string
}

func SerializeJob(j Job) SerializedJob {
	return SerializedJob{
		Description:  SerializeDescription(j.Description),
		Requirements: SerializeRequirements(j.Requirements),
		Benefits:     SerializeBenefits(j.Benefits),
	}
}

// encode never fails for the canonical shapes: they only hold strings.
func encode(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
	return strings.TrimSuffix(buf.String(), "\n")
}
