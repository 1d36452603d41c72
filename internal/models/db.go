package models

import (
	"time"

	"go-jobboard/internal/content"
)

type JobStatus string

const (
	StatusDraft     JobStatus = "DRAFT"
	StatusPublished JobStatus = "PUBLISHED"
	StatusClosed    JobStatus = "CLOSED"
)

// Job is a posting as stored. Description, Requirements and Benefits hold
// the serialized content text; nil means the column is NULL.
type Job struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Salary       string     `json:"salary"`
	Status       JobStatus  `json:"status"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Benefits     *string    `json:"benefits"`
	AnnouncedAt  *time.Time `json:"announced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Content parses the three content columns.
func (j *Job) Content() content.Job {
	return content.ParseJob(deref(j.Description), deref(j.Requirements), deref(j.Benefits))
}

// RawContent returns the stored text of one content column.
func (j *Job) RawContent(f content.Field) string {
	switch f {
	case content.FieldRequirements:
		return deref(j.Requirements)
	case content.FieldBenefits:
		return deref(j.Benefits)
	default:
		return deref(j.Description)
	}
}

// SetContent stores serialized content on the record.
func (j *Job) SetContent(s content.SerializedJob) {
	j.Description = &s.Description
	j.Requirements = &s.Requirements
	j.Benefits = &s.Benefits
}
