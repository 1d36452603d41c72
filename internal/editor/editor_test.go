package editor

import (
	"fmt"
	"testing"

	"go-jobboard/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter() IDSource {
	n := 0
	return func() RowID {
		n++
		return RowID(fmt.Sprintf("r%d", n))
	}
}

func ids[T any](rows []Row[T]) []RowID {
	out := make([]RowID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestNewEditorsReseed(t *testing.T) {
	d := NewDescriptionEditor(content.Description{Intro: "x", Points: []string{}})
	assert.Equal(t, 1, d.Points.Len())

	r := NewRequirementsEditor(nil)
	assert.Equal(t, []string{""}, r.Values())

	b := NewBenefitsEditor(content.Benefits{})
	assert.Equal(t, []content.Benefit{{}}, b.Values())
}

func TestRemoveAllThenAppendGetsFreshID(t *testing.T) {
	r := NewRequirementsEditor(content.Requirements{"Go", "SQL"})
	seen := map[RowID]bool{}
	for _, id := range ids(r.Rows()) {
		seen[id] = true
	}

	require.NoError(t, r.RemoveAt(1))
	require.NoError(t, r.RemoveAt(0))
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Model())

	id := r.AppendEmpty()
	assert.Equal(t, 1, r.Len())
	assert.False(t, seen[id], "row id %s was reused", id)
	assert.Equal(t, content.Requirements{""}, r.Model())
}

func TestRetiredIDsAreNotReused(t *testing.T) {
	// A source that keeps repeating itself must not resurrect a deleted id.
	calls := 0
	src := func() RowID {
		calls++
		if calls <= 3 {
			return "dup"
		}
		return RowID(fmt.Sprintf("r%d", calls))
	}
	l := NewList([]string{"a"}, WithIDSource(src))
	first := l.Rows()[0].ID
	assert.Equal(t, RowID("dup"), first)

	require.NoError(t, l.Remove(first))
	id := l.AppendEmpty()
	assert.NotEqual(t, first, id)
}

func TestStuckIDSourcePanics(t *testing.T) {
	l := NewList([]string{"a"}, WithIDSource(func() RowID { return "same" }))
	assert.PanicsWithValue(t, "editor: IDSource returned only used row ids in 1000 draws", func() {
		l.AppendEmpty()
	})
}

func TestMoveKeepsIdentity(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d"}, WithIDSource(counter()))
	before := l.Rows()

	require.NoError(t, l.Move(0, 2))
	assert.Equal(t, []string{"b", "c", "a", "d"}, l.Values())
	assert.Equal(t, []RowID{"r2", "r3", "r1", "r4"}, ids(l.Rows()))

	require.NoError(t, l.Move(3, 0))
	assert.Equal(t, []string{"d", "b", "c", "a"}, l.Values())

	// every id still maps to its original text
	byID := map[RowID]string{}
	for _, r := range before {
		byID[r.ID] = r.Value
	}
	for _, r := range l.Rows() {
		assert.Equal(t, byID[r.ID], r.Value)
	}
	assert.ElementsMatch(t, ids(before), ids(l.Rows()))
}

func TestMoveOutOfRange(t *testing.T) {
	l := NewList([]string{"a"})
	assert.ErrorIs(t, l.Move(0, 1), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Move(-1, 0), ErrIndexOutOfRange)
	assert.NoError(t, l.Move(0, 0))
}

func TestEditAndInsert(t *testing.T) {
	l := NewList([]string{"a", "c"}, WithIDSource(counter()))
	id, err := l.Insert(1, "b")
	require.NoError(t, err)
	assert.Equal(t, RowID("r3"), id)
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())

	require.NoError(t, l.Set(2, "C"))
	require.NoError(t, l.SetByID("r1", "A"))
	assert.Equal(t, []string{"A", "b", "C"}, l.Values())

	assert.ErrorIs(t, l.Set(5, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.SetByID("nope", "x"), ErrUnknownRow)
	_, err = l.Insert(4, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestBenefitsSetTextKeepsIcon(t *testing.T) {
	b := NewBenefitsEditor(content.Benefits{{Icon: "salary", Text: "old"}})
	require.NoError(t, b.SetText(0, "Lương tháng 13"))
	assert.Equal(t, content.Benefits{{Icon: "salary", Text: "Lương tháng 13"}}, b.Model())

	b.AppendEmpty()
	assert.Equal(t, content.Benefit{}, b.Values()[1])
}

func TestJobEditorApply(t *testing.T) {
	e := NewEmptyJobEditor(WithIDSource(counter()))

	steps := []Op{
		{Field: "description", Kind: OpIntro, Text: "Chúng tôi tuyển Go dev"},
		{Field: "description", Kind: OpEdit, Index: 0, Text: "Xây dựng API"},
		{Field: "description", Kind: OpAppend},
		{Field: "description", Kind: OpEdit, Index: 1, Text: "Vận hành PostgreSQL"},
		{Field: "requirements", Kind: OpEdit, Index: 0, Text: "1 năm Go"},
		{Field: "requirements", Kind: OpAppend},
		{Field: "benefits", Kind: OpEdit, Index: 0, Text: "Bảo hiểm đầy đủ"},
		{Field: "benefits", Kind: OpAppend},
		{Field: "benefits", Kind: OpEdit, Index: 1, Text: "Lương tháng 13"},
		{Field: "benefits", Kind: OpMove, Index: 1, To: 0},
		{Field: "benefits", Kind: OpIcon, Index: 0, Icon: "salary"},
	}
	for _, op := range steps {
		_, err := e.Apply(op)
		require.NoError(t, err, "%+v", op)
	}

	got := e.Submit()
	assert.Equal(t, `{"intro":"Chúng tôi tuyển Go dev","points":["Xây dựng API","Vận hành PostgreSQL"]}`, got.Description)
	assert.Equal(t, `["1 năm Go"]`, got.Requirements)
	assert.Equal(t, `[{"icon":"salary","text":"Lương tháng 13"},{"icon":"","text":"Bảo hiểm đầy đủ"}]`, got.Benefits)

	// Submitted text parses back to what the editor holds, minus blank rows.
	parsed := content.ParseJob(got.Description, got.Requirements, got.Benefits)
	assert.Equal(t, content.NormalizeRequirements(e.Model().Requirements), parsed.Requirements)
	assert.Equal(t, e.Model().Benefits, parsed.Benefits)
}

func TestJobEditorApplyByRow(t *testing.T) {
	e := NewJobEditor(content.Job{Requirements: content.Requirements{"a", "b"}}, WithIDSource(counter()))
	rows := e.State().Requirements
	require.Len(t, rows, 2)

	_, err := e.Apply(Op{Field: "requirements", Kind: OpRemove, Row: rows[0].ID})
	require.NoError(t, err)
	assert.Equal(t, content.Requirements{"b"}, e.Model().Requirements)

	_, err = e.Apply(Op{Field: "requirements", Kind: OpEdit, Row: rows[0].ID, Text: "x"})
	assert.ErrorIs(t, err, ErrUnknownRow)
}

func TestJobEditorApplyErrors(t *testing.T) {
	e := NewEmptyJobEditor()

	_, err := e.Apply(Op{Field: "salary", Kind: OpAppend})
	assert.ErrorIs(t, err, ErrInvalidOp)

	_, err = e.Apply(Op{Field: "requirements", Kind: "shuffle"})
	assert.ErrorIs(t, err, ErrInvalidOp)

	_, err = e.Apply(Op{Field: "benefits", Kind: OpRemove, Index: 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEditorRoundTripFromParse(t *testing.T) {
	raw := `{"intro":"Hi","points":["x","","y"]}`
	e := NewDescriptionEditor(content.ParseDescription(raw))
	assert.Equal(t, []string{"x", "y"}, e.Points.Values())
	assert.Equal(t, `{"intro":"Hi","points":["x","y"]}`, content.SerializeDescription(e.Model()))
}
