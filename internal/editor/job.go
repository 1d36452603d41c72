package editor

import (
	"errors"
	"fmt"

	"go-jobboard/internal/content"
)

var ErrInvalidOp = errors.New("invalid editor operation")

// OpKind names a mutation the admin console can send.
type OpKind string

const (
	OpAppend OpKind = "append"
	OpInsert OpKind = "insert"
	OpRemove OpKind = "remove"
	OpEdit   OpKind = "edit"
	OpMove   OpKind = "move"
	OpIntro  OpKind = "intro"
	OpIcon   OpKind = "icon"
)

// Op is one editor mutation. Rows are addressed by Row when set, otherwise
// by Index.
type Op struct {
	Field string `json:"field"`
	Kind  OpKind `json:"op"`
	Index int    `json:"index"`
	To    int    `json:"to"`
	Row   RowID  `json:"row,omitempty"`
	Text  string `json:"text"`
	Icon  string `json:"icon"`
}

// JobEditor holds the three field editors of one posting being edited.
type JobEditor struct {
	Description  *DescriptionEditor
	Requirements *RequirementsEditor
	Benefits     *BenefitsEditor
}

func NewJobEditor(job content.Job, opts ...Option) *JobEditor {
	return &JobEditor{
		Description:  NewDescriptionEditor(job.Description, opts...),
		Requirements: NewRequirementsEditor(job.Requirements, opts...),
		Benefits:     NewBenefitsEditor(job.Benefits, opts...),
	}
}

// NewEmptyJobEditor opens a blank posting: one empty row per list.
func NewEmptyJobEditor(opts ...Option) *JobEditor {
	return NewJobEditor(content.Job{}, opts...)
}

// State is a JSON-friendly snapshot of the editor.
type State struct {
	Intro        string                 `json:"intro"`
	Points       []Row[string]          `json:"points"`
	Requirements []Row[string]          `json:"requirements"`
	Benefits     []Row[content.Benefit] `json:"benefits"`
}

func (e *JobEditor) State() State {
	return State{
		Intro:        e.Description.Intro,
		Points:       e.Description.Points.Rows(),
		Requirements: e.Requirements.Rows(),
		Benefits:     e.Benefits.Rows(),
	}
}

func (e *JobEditor) Model() content.Job {
	return content.Job{
		Description:  e.Description.Model(),
		Requirements: e.Requirements.Model(),
		Benefits:     e.Benefits.Model(),
	}
}

// Submit serializes the current content. Rows left blank are dropped.
func (e *JobEditor) Submit() content.SerializedJob {
	return content.SerializeJob(e.Model())
}

// Apply performs op and returns the RowID it created, if any.
func (e *JobEditor) Apply(op Op) (RowID, error) {
	f, err := content.ParseField(op.Field)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOp, err)
	}

	switch f {
	case content.FieldDescription:
		if op.Kind == OpIntro {
			e.Description.SetIntro(op.Text)
			return "", nil
		}
		return applyList(e.Description.Points, op, func(_ string) string { return op.Text })
	case content.FieldRequirements:
		return applyList(e.Requirements.List, op, func(_ string) string { return op.Text })
	default:
		if op.Kind == OpIcon {
			i, err := resolveIndex(e.Benefits.List, op)
			if err != nil {
				return "", err
			}
			return "", e.Benefits.SetIcon(i, op.Icon)
		}
		return applyList(e.Benefits.List, op, func(b content.Benefit) content.Benefit {
			b.Text = op.Text
			return b
		})
	}
}

func resolveIndex[T any](l *List[T], op Op) (int, error) {
	if op.Row != "" {
		return l.IndexOf(op.Row)
	}
	return op.Index, nil
}

// applyList runs the list-level operations shared by every field. edit
// derives the new value from the old one.
func applyList[T any](l *List[T], op Op, edit func(T) T) (RowID, error) {
	switch op.Kind {
	case OpAppend:
		return l.AppendEmpty(), nil
	case OpInsert:
		var zero T
		return l.Insert(op.Index, zero)
	}

	i, err := resolveIndex(l, op)
	if err != nil {
		return "", err
	}
	switch op.Kind {
	case OpRemove:
		return "", l.RemoveAt(i)
	case OpEdit:
		return "", l.Update(i, edit)
	case OpMove:
		return "", l.Move(i, op.To)
	default:
		return "", fmt.Errorf("%w: %q on %s", ErrInvalidOp, op.Kind, op.Field)
	}
}
