package handlers

import (
	"errors"
	"io"
	"net/http"

	"go-jobboard/internal/content"
	"go-jobboard/internal/dtos"
	"go-jobboard/internal/editor"
	"go-jobboard/internal/services"
	"go-jobboard/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler drives the structured editors of the admin console. Each
// open screen owns one session; every mutation returns the new state.
type SessionHandler struct {
	JobService *services.JobService
	Sessions   *session.Store
	Logger     *zap.Logger
}

func NewSessionHandler(j *services.JobService, sessions *session.Store, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{JobService: j, Sessions: sessions, Logger: logger}
}

// bindOptional binds a JSON body that may be absent.
func bindOptional(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func stateOf(s *session.Session) editor.State {
	var st editor.State
	_ = s.Do(func(e *editor.JobEditor) error {
		st = e.State()
		return nil
	})
	return st
}

// Open is POST /admin/sessions. With a job_id the editors load that
// posting, otherwise they start blank.
func (h *SessionHandler) Open(c *gin.Context) {
	var req dtos.OpenSessionRequest
	if err := bindOptional(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	var job content.Job
	if req.JobID != "" {
		var err error
		job, err = h.JobService.EditableContent(c.Request.Context(), req.JobID)
		if err != nil {
			respondError(c, h.Logger, "Failed to load job content", err)
			return
		}
	}

	s := h.Sessions.Open(req.JobID, job)
	c.JSON(http.StatusCreated, dtos.SessionResponse{ID: s.ID, JobID: s.JobID, State: stateOf(s)})
}

func (h *SessionHandler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.Sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, h.Logger, "Failed to find session", err)
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dtos.SessionResponse{ID: s.ID, JobID: s.JobID, State: stateOf(s)})
}

// Apply is POST /admin/sessions/:sid/ops.
func (h *SessionHandler) Apply(c *gin.Context) {
	var op editor.Op
	if err := c.ShouldBindJSON(&op); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}

	var resp dtos.OpResponse
	err := s.Do(func(e *editor.JobEditor) error {
		row, err := e.Apply(op)
		if err != nil {
			return err
		}
		resp = dtos.OpResponse{Row: row, State: e.State()}
		return nil
	})
	if err != nil {
		respondError(c, h.Logger, "Failed to apply operation", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit is POST /admin/sessions/:sid/submit. It saves the content of an
// existing posting or creates a new one, then closes the session.
func (h *SessionHandler) Submit(c *gin.Context) {
	var req dtos.SubmitSessionRequest
	if err := bindOptional(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	s, ok := h.session(c)
	if !ok {
		return
	}

	var out content.SerializedJob
	_ = s.Do(func(e *editor.JobEditor) error {
		out = e.Submit()
		return nil
	})

	ctx := c.Request.Context()
	if s.JobID == "" {
		job, err := h.JobService.CreateFromSession(ctx, &req, out)
		if err != nil {
			respondError(c, h.Logger, "Failed to create job", err)
			return
		}
		h.Sessions.Close(s.ID)
		c.JSON(http.StatusCreated, job)
		return
	}

	if err := h.JobService.SaveContent(ctx, s.JobID, out); err != nil {
		respondError(c, h.Logger, "Failed to save job content", err)
		return
	}
	job, err := h.JobService.GetJob(ctx, s.JobID)
	if err != nil {
		respondError(c, h.Logger, "Failed to load job", err)
		return
	}
	h.Sessions.Close(s.ID)
	c.JSON(http.StatusOK, job)
}

// Close is DELETE /admin/sessions/:sid.
func (h *SessionHandler) Close(c *gin.Context) {
	h.Sessions.Close(c.Param("sid"))
	c.Status(http.StatusNoContent)
}
