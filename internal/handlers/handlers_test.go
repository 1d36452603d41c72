package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go-jobboard/internal/database"
	"go-jobboard/internal/dtos"
	"go-jobboard/internal/models"
	"go-jobboard/internal/render"
	"go-jobboard/internal/services"
	"go-jobboard/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	n    int
}

func newFakeStore() *fakeStore { return &fakeStore{jobs: make(map[string]*models.Job)} }

func (f *fakeStore) CreateJob(_ context.Context, job *models.Job) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	job.ID = fmt.Sprintf("job-%d", f.n)
	if job.Status == "" {
		job.Status = models.StatusDraft
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return job, nil
}

func (f *fakeStore) GetJobByID(_ context.Context, id string) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", database.ErrJobNotFound, id)
	}
	cp := *j
	return &cp, nil
}

func (f *fakeStore) UpdateJob(_ context.Context, job *models.Job) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.ID]; !ok {
		return nil, database.ErrJobNotFound
	}
	cp := *job
	f.jobs[job.ID] = &cp
	return job, nil
}

func (f *fakeStore) UpdateJobContent(_ context.Context, id, d, r, b string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return database.ErrJobNotFound
	}
	j.Description, j.Requirements, j.Benefits = &d, &r, &b
	return nil
}

func (f *fakeStore) ListJobs(_ context.Context, limit, offset int) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Job
	for i := 1; i <= f.n; i++ {
		if j, ok := f.jobs[fmt.Sprintf("job-%d", i)]; ok {
			out = append(out, *j)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) DeleteJob(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return database.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

type fakePrinter struct{}

func (fakePrinter) Generate(_ context.Context, p render.Page) ([]byte, error) {
	return []byte("%PDF-1.7 " + p.Title), nil
}

type testServer struct {
	store    *fakeStore
	sessions *session.Store
	router   *gin.Engine
}

func newTestServer(printer PDFGenerator) *testServer {
	gin.SetMode(gin.TestMode)
	store := newFakeStore()
	svc := services.NewJobService(store, nil)
	sessions := session.NewStore(time.Hour, nil)
	return &testServer{
		store:    store,
		sessions: sessions,
		router:   NewRouter(NewJobHandler(svc, printer, nil), NewSessionHandler(svc, sessions, nil), nil),
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func strPtr(s string) *string { return &s }

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(nil)
	w := ts.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestJobCRUD(t *testing.T) {
	ts := newTestServer(nil)

	w := ts.do(t, http.MethodPost, "/api/v1/admin/jobs", map[string]any{"company": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/admin/jobs", map[string]any{
		"title":   "Golang Developer",
		"company": "OpenClaw",
		"content": map[string]any{
			"description":  map[string]any{"intro": "Tuyển gấp", "points": []string{"API", ""}},
			"requirements": []string{"Go"},
			"benefits":     []map[string]string{{"icon": "", "text": "Lương tháng 13"}},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[models.Job](t, w)
	assert.Equal(t, `{"intro":"Tuyển gấp","points":["API"]}`, *created.Description)

	w = ts.do(t, http.MethodGet, "/api/v1/admin/jobs/"+created.ID+"/content", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payload := decode[dtos.ContentPayload](t, w)
	assert.Equal(t, []string{"API"}, payload.Description.Points)
	assert.Equal(t, "Lương tháng 13", payload.Benefits[0].Text)

	w = ts.do(t, http.MethodPut, "/api/v1/admin/jobs/"+created.ID, map[string]any{
		"title": "Senior Golang Developer", "company": "OpenClaw", "status": "PUBLISHED",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusPublished, decode[models.Job](t, w).Status)

	w = ts.do(t, http.MethodPut, "/api/v1/admin/jobs/"+created.ID, map[string]any{
		"title": "x", "company": "y", "status": "ARCHIVED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/admin/jobs?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Job](t, w), 1)

	w = ts.do(t, http.MethodDelete, "/api/v1/admin/jobs/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = ts.do(t, http.MethodDelete, "/api/v1/admin/jobs/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/admin/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListJobsRejectsBadPaging(t *testing.T) {
	ts := newTestServer(nil)
	for _, q := range []string{"limit=0", "limit=abc", "offset=-1"} {
		w := ts.do(t, http.MethodGet, "/api/v1/admin/jobs?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestUnknownJobIs404(t *testing.T) {
	ts := newTestServer(fakePrinter{})
	for _, path := range []string{
		"/api/v1/admin/jobs/nope/content",
		"/api/v1/mobile/jobs/nope",
		"/admin/jobs/nope/preview",
		"/jobs/nope",
		"/jobs/nope/pdf",
	} {
		w := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), `"error"`, path)
	}
}

func TestRenderedSurfaces(t *testing.T) {
	ts := newTestServer(fakePrinter{})
	job, _ := ts.store.CreateJob(context.Background(), &models.Job{
		Title:        "Golang Developer",
		Description:  strPtr("Mô tả cũ dạng văn bản"),
		Requirements: strPtr("Go\nSQL"),
		Benefits:     strPtr(`[{"icon":"salary","text":"Lương tháng 13"}]`),
	})

	w := ts.do(t, http.MethodGet, "/admin/jobs/"+job.ID+"/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Mô tả cũ dạng văn bản")
	assert.Contains(t, w.Body.String(), "attach_money")

	w = ts.do(t, http.MethodGet, "/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fa-money-bill-wave")

	w = ts.do(t, http.MethodGet, "/api/v1/mobile/jobs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	m := decode[render.MobileJob](t, w)
	assert.Equal(t, job.ID, m.ID)
	assert.Equal(t, []render.MobileItem{
		{Icon: "star", Text: "Go"},
		{Icon: "star", Text: "SQL"},
	}, m.Requirements)
	assert.Equal(t, "cash-outline", m.Benefits[0].Icon)

	w = ts.do(t, http.MethodGet, "/jobs/"+job.ID+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7 Golang Developer", w.Body.String())
}

func TestPDFDisabled(t *testing.T) {
	ts := newTestServer(nil)
	job, _ := ts.store.CreateJob(context.Background(), &models.Job{Title: "x"})
	w := ts.do(t, http.MethodGet, "/jobs/"+job.ID+"/pdf", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDraftSession(t *testing.T) {
	ts := newTestServer(nil)

	w := ts.do(t, http.MethodPost, "/api/v1/admin/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	opened := decode[dtos.SessionResponse](t, w)
	require.Len(t, opened.State.Requirements, 1)
	require.Len(t, opened.State.Benefits, 1)
	base := "/api/v1/admin/sessions/" + opened.ID

	w = ts.do(t, http.MethodPost, base+"/ops", map[string]any{"field": "requirements", "op": "edit", "index": 0, "text": "Go"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(t, http.MethodPost, base+"/ops", map[string]any{"field": "requirements", "op": "append"})
	require.Equal(t, http.StatusOK, w.Code)
	appended := decode[dtos.OpResponse](t, w)
	require.NotEmpty(t, appended.Row)
	assert.Len(t, appended.State.Requirements, 2)

	w = ts.do(t, http.MethodPost, base+"/ops", map[string]any{"field": "requirements", "op": "edit", "row": appended.Row, "text": "SQL"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, base+"/ops", map[string]any{"field": "benefits", "op": "edit", "index": 0, "text": "Du lịch hằng năm"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, base+"/ops", map[string]any{"field": "description", "op": "intro", "text": "Tuyển Golang"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, base+"/submit", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, base+"/submit", map[string]any{"title": "Go dev", "company": "OpenClaw"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[models.Job](t, w)
	assert.Equal(t, `{"intro":"Tuyển Golang","points":[]}`, *job.Description)
	assert.Equal(t, `["Go","SQL"]`, *job.Requirements)
	assert.Equal(t, `[{"icon":"","text":"Du lịch hằng năm"}]`, *job.Benefits)

	w = ts.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, ts.sessions.Len())
}

func TestEditSessionOfExistingJob(t *testing.T) {
	ts := newTestServer(nil)
	job, _ := ts.store.CreateJob(context.Background(), &models.Job{
		Title:        "Legacy",
		Requirements: strPtr("Go\nDocker"),
	})

	w := ts.do(t, http.MethodPost, "/api/v1/admin/sessions", map[string]string{"job_id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/admin/sessions", map[string]string{"job_id": job.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	opened := decode[dtos.SessionResponse](t, w)
	assert.Equal(t, job.ID, opened.JobID)
	require.Len(t, opened.State.Requirements, 2)
	base := "/api/v1/admin/sessions/" + opened.ID

	w = ts.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, base+"/ops", map[string]any{"field": "requirements", "op": "move", "index": 1, "to": 0})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := ts.store.GetJobByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, `["Docker","Go"]`, *stored.Requirements)
	assert.Equal(t, `[]`, *stored.Benefits)
}

func TestSessionOpErrors(t *testing.T) {
	ts := newTestServer(nil)
	w := ts.do(t, http.MethodPost, "/api/v1/admin/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	base := "/api/v1/admin/sessions/" + decode[dtos.SessionResponse](t, w).ID

	tests := []struct {
		name string
		op   map[string]any
	}{
		{"unknown field", map[string]any{"field": "salary", "op": "append"}},
		{"index out of range", map[string]any{"field": "requirements", "op": "remove", "index": 5}},
		{"unknown row", map[string]any{"field": "benefits", "op": "edit", "row": "ghost", "text": "x"}},
		{"unknown kind", map[string]any{"field": "requirements", "op": "explode", "index": 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, base+"/ops", tt.op)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w = ts.do(t, http.MethodPost, "/api/v1/admin/sessions/ghost/ops", map[string]any{"field": "requirements", "op": "append"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = ts.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
