package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-jobboard/internal/models"
	"go-jobboard/internal/render"

	"go.uber.org/zap"
)

type AnnounceStore interface {
	ListUnannounced(ctx context.Context) ([]models.Job, error)
	MarkAnnounced(ctx context.Context, jobID string, at time.Time) error
}

// Announcer delivers one posting to a channel. telegram.Bot satisfies it.
type Announcer interface {
	SendJob(page render.Page, applyURL string) error
}

// SeenCache guards against announcing a posting twice. dedup.JobCache
// satisfies it.
type SeenCache interface {
	IsSeen(jobID string) bool
	Add(jobIDs ...string)
}

type AnnounceService struct {
	Store   AnnounceStore
	Channel Announcer
	Seen    SeenCache
	BaseURL string
	Logger  *zap.Logger
	Now     func() time.Time
}

func NewAnnounceService(store AnnounceStore, channel Announcer, seen SeenCache, baseURL string, logger *zap.Logger) *AnnounceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnounceService{
		Store:   store,
		Channel: channel,
		Seen:    seen,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Logger:  logger,
		Now:     time.Now,
	}
}

// ApplyURL is the public page of a posting.
func (s *AnnounceService) ApplyURL(jobID string) string {
	return fmt.Sprintf("%s/jobs/%s", s.BaseURL, jobID)
}

// Announce sends every published, unannounced posting and marks it. A
// failed send stops the run so the remaining postings go out next time.
func (s *AnnounceService) Announce(ctx context.Context) (int, error) {
	jobs, err := s.Store.ListUnannounced(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unannounced jobs: %w", err)
	}

	sent := 0
	for i := range jobs {
		job := &jobs[i]
		if s.Seen != nil && s.Seen.IsSeen(job.ID) {
			s.Logger.Debug("job already announced, marking only", zap.String("job", job.ID))
		} else {
			if err := s.Channel.SendJob(PageOf(job), s.ApplyURL(job.ID)); err != nil {
				return sent, fmt.Errorf("announce job %s: %w", job.ID, err)
			}
			if s.Seen != nil {
				s.Seen.Add(job.ID)
			}
			sent++
			s.Logger.Info("job announced", zap.String("job", job.ID), zap.String("title", job.Title))
		}
		if err := s.Store.MarkAnnounced(ctx, job.ID, s.Now()); err != nil {
			return sent, fmt.Errorf("mark job %s announced: %w", job.ID, err)
		}
	}
	return sent, nil
}
