package services

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard/internal/content"
	"go-jobboard/internal/dtos"
	"go-jobboard/internal/models"
	"go-jobboard/internal/render"

	"go.uber.org/zap"
)

var ErrMissingTitle = errors.New("title is required")

// JobStore is the persistence the job service needs. database.Repository
// satisfies it.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	GetJobByID(ctx context.Context, jobID string) (*models.Job, error)
	UpdateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	UpdateJobContent(ctx context.Context, jobID string, description, requirements, benefits string) error
	ListJobs(ctx context.Context, limit, offset int) ([]models.Job, error)
	DeleteJob(ctx context.Context, jobID string) error
}

type JobService struct {
	Store  JobStore
	Logger *zap.Logger
}

func NewJobService(store JobStore, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{Store: store, Logger: logger}
}

func applyRequest(job *models.Job, req *dtos.JobRequest) {
	job.Title = req.Title
	job.Company = req.Company
	job.Location = req.Location
	job.Salary = req.Salary
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	job.SetContent(content.SerializeJob(req.Content.Job()))
}

func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobRequest) (*models.Job, error) {
	job := &models.Job{}
	applyRequest(job, req)
	created, err := s.Store.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("job created", zap.String("job", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (s *JobService) UpdateJob(ctx context.Context, jobID string, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.Store.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	applyRequest(job, req)
	updated, err := s.Store.UpdateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("job updated", zap.String("job", jobID))
	return updated, nil
}

func (s *JobService) GetJob(ctx context.Context, jobID string) (*models.Job, error) {
	return s.Store.GetJobByID(ctx, jobID)
}

func (s *JobService) ListJobs(ctx context.Context, limit, offset int) ([]models.Job, error) {
	return s.Store.ListJobs(ctx, limit, offset)
}

func (s *JobService) DeleteJob(ctx context.Context, jobID string) error {
	if err := s.Store.DeleteJob(ctx, jobID); err != nil {
		return err
	}
	s.Logger.Info("job deleted", zap.String("job", jobID))
	return nil
}

// EditableContent parses a stored job for the editors: every list has at
// least one row.
func (s *JobService) EditableContent(ctx context.Context, jobID string) (content.Job, error) {
	job, err := s.Store.GetJobByID(ctx, jobID)
	if err != nil {
		return content.Job{}, err
	}
	c := job.Content()
	return content.Job{
		Description:  content.Reseed(c.Description).(content.Description),
		Requirements: content.Reseed(c.Requirements).(content.Requirements),
		Benefits:     content.Reseed(c.Benefits).(content.Benefits),
	}, nil
}

// SaveContent stores content submitted by an editor session.
func (s *JobService) SaveContent(ctx context.Context, jobID string, c content.SerializedJob) error {
	if err := s.Store.UpdateJobContent(ctx, jobID, c.Description, c.Requirements, c.Benefits); err != nil {
		return err
	}
	s.Logger.Info("job content saved", zap.String("job", jobID))
	return nil
}

// CreateFromSession creates a posting from a drafting session.
func (s *JobService) CreateFromSession(ctx context.Context, req *dtos.SubmitSessionRequest, c content.SerializedJob) (*models.Job, error) {
	if req.Title == "" {
		return nil, ErrMissingTitle
	}
	job := &models.Job{
		Title:    req.Title,
		Company:  req.Company,
		Location: req.Location,
		Salary:   req.Salary,
	}
	job.SetContent(c)
	created, err := s.Store.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("job created from editor session", zap.String("job", created.ID))
	return created, nil
}

// Page re-parses a stored job into a renderable page.
func (s *JobService) Page(ctx context.Context, jobID string) (render.Page, error) {
	job, err := s.Store.GetJobByID(ctx, jobID)
	if err != nil {
		return render.Page{}, err
	}
	return PageOf(job), nil
}

func PageOf(job *models.Job) render.Page {
	return render.Page{
		JobID:    job.ID,
		Title:    job.Title,
		Company:  job.Company,
		Location: job.Location,
		Salary:   job.Salary,
		View:     render.Build(job.Content()),
	}
}

// FieldCounts tallies how one content column is encoded across jobs.
type FieldCounts struct {
	Structured int `json:"structured"`
	Legacy     int `json:"legacy"`
	Empty      int `json:"empty"`
}

type AuditReport struct {
	Jobs   int                    `json:"jobs"`
	Fields map[string]FieldCounts `json:"fields"`
}

var allFields = []content.Field{content.FieldDescription, content.FieldRequirements, content.FieldBenefits}

const pageSize = 200

// eachJob walks every stored job page by page.
func (s *JobService) eachJob(ctx context.Context, fn func(job *models.Job) error) error {
	for offset := 0; ; offset += pageSize {
		jobs, err := s.Store.ListJobs(ctx, pageSize, offset)
		if err != nil {
			return err
		}
		for i := range jobs {
			if err := fn(&jobs[i]); err != nil {
				return err
			}
		}
		if len(jobs) < pageSize {
			return nil
		}
	}
}

// Audit counts structured, legacy and empty values per content column.
func (s *JobService) Audit(ctx context.Context) (AuditReport, error) {
	report := AuditReport{Fields: make(map[string]FieldCounts, len(allFields))}
	err := s.eachJob(ctx, func(job *models.Job) error {
		report.Jobs++
		for _, f := range allFields {
			c := report.Fields[f.String()]
			switch content.Detect(f, job.RawContent(f)) {
			case content.FormatStructured:
				c.Structured++
			case content.FormatLegacy:
				c.Legacy++
			default:
				c.Empty++
			}
			report.Fields[f.String()] = c
		}
		return nil
	})
	if err != nil {
		return AuditReport{}, fmt.Errorf("audit failed: %w", err)
	}
	return report, nil
}

// Backfill rewrites legacy description and requirements values in the
// structured format. Legacy benefits are left untouched because the parser
// cannot recover them and rewriting would erase the text. It returns the
// number of jobs that were (or, with dryRun, would be) rewritten.
func (s *JobService) Backfill(ctx context.Context, dryRun bool) (int, error) {
	type rewrite struct {
		id  string
		out content.SerializedJob
	}
	var pending []rewrite

	err := s.eachJob(ctx, func(job *models.Job) error {
		desc := job.RawContent(content.FieldDescription)
		req := job.RawContent(content.FieldRequirements)
		ben := job.RawContent(content.FieldBenefits)

		out := content.SerializedJob{Description: desc, Requirements: req, Benefits: ben}
		changed := false
		if content.Detect(content.FieldDescription, desc) == content.FormatLegacy {
			out.Description = content.SerializeDescription(content.ParseDescription(desc))
			changed = true
		}
		if content.Detect(content.FieldRequirements, req) == content.FormatLegacy {
			out.Requirements = content.SerializeRequirements(content.ParseRequirements(req))
			changed = true
		}
		if changed {
			pending = append(pending, rewrite{id: job.ID, out: out})
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("backfill scan failed: %w", err)
	}

	if dryRun {
		return len(pending), nil
	}
	for done, p := range pending {
		if err := s.Store.UpdateJobContent(ctx, p.id, p.out.Description, p.out.Requirements, p.out.Benefits); err != nil {
			return done, fmt.Errorf("backfill job %s: %w", p.id, err)
		}
		s.Logger.Info("legacy content backfilled", zap.String("job", p.id))
	}
	return len(pending), nil
}
