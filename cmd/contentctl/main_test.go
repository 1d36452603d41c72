package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go-jobboard/internal/render"
	"go-jobboard/internal/services"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage() render.Page {
	return render.Page{
		JobID: "9",
		Title: "Golang Developer",
		View:  render.FromRaw("Mô tả", "Go\nSQL", `[{"icon":"bảo hiểm","text":"Bảo hiểm sức khỏe"}]`),
	}
}

func TestRenderPage(t *testing.T) {
	tests := []struct {
		surface string
		want    string
	}{
		{"text", "⭐ SQL"},
		{"admin", "local_hospital"},
		{"web", "fa-notes-medical"},
		{"mobile", `"icon": "medkit-outline"`},
	}
	for _, tt := range tests {
		t.Run(tt.surface, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderPage(&buf, testPage(), tt.surface))
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	var buf bytes.Buffer
	assert.Error(t, renderPage(&buf, testPage(), "fax"))
}

func TestRenderPageMobileIsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderPage(&buf, testPage(), "mobile"))
	var m render.MobileJob
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "9", m.ID)
	assert.Len(t, m.Requirements, 2)
}

func TestPrintAudit(t *testing.T) {
	var buf bytes.Buffer
	printAudit(&buf, services.AuditReport{
		Jobs: 3,
		Fields: map[string]services.FieldCounts{
			"description": {Structured: 2, Legacy: 1},
			"benefits":    {Empty: 3},
		},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "📊 3 jobs", lines[0])
	assert.Equal(t, []string{"description", "2", "1", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"requirements", "0", "0", "0"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"benefits", "0", "0", "3"}, strings.Fields(lines[4]))
}

func TestIconCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
		hint bool
	}{
		{args: []string{"salary"}, want: `"salary" -> money`},
		{args: []string{"star", "Du lịch hằng năm"}, want: `"star" -> travel`},
		{args: []string{"star"}, want: `"star" -> check`, hint: true},
		{args: []string{"???"}, want: `"???" -> check`},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var buf bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&buf)
			require.NoError(t, runIcon(cmd, tt.args))
			assert.Contains(t, buf.String(), tt.want)
			assert.Equal(t, tt.hint, strings.Contains(buf.String(), "placeholder key"))
		})
	}
}
