package dtos

import (
	"go-jobboard/internal/content"
	"go-jobboard/internal/editor"
)

// ContentPayload carries the structured content the admin console edits.
type ContentPayload struct {
	Description  content.Description `json:"description"`
	Requirements []string            `json:"requirements"`
	Benefits     []content.Benefit   `json:"benefits"`
}

func (p ContentPayload) Job() content.Job {
	return content.Job{
		Description:  p.Description,
		Requirements: content.Requirements(p.Requirements),
		Benefits:     content.Benefits(p.Benefits),
	}
}

// PayloadOf is the inverse of Job.
func PayloadOf(j content.Job) ContentPayload {
	return ContentPayload{
		Description:  j.Description,
		Requirements: []string(j.Requirements),
		Benefits:     []content.Benefit(j.Benefits),
	}
}

type JobRequest struct {
	Title    string `json:"title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	Status   string `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED CLOSED"`

	Content ContentPayload `json:"content"`
}

type OpenSessionRequest struct {
	// JobID is empty when drafting a new posting.
	JobID string `json:"job_id"`
}

type SessionResponse struct {
	ID    string       `json:"id"`
	JobID string       `json:"job_id,omitempty"`
	State editor.State `json:"state"`
}

type OpResponse struct {
	Row   editor.RowID `json:"row,omitempty"`
	State editor.State `json:"state"`
}

// SubmitSessionRequest carries the non-content fields needed when a session
// drafting a new posting is submitted.
type SubmitSessionRequest struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
}
