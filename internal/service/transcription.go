package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/nolan/scribecloud/internal/cache"
	"github.com/nolan/scribecloud/internal/ent"
	entanon "github.com/nolan/scribecloud/internal/ent/anonymoususer"
	enttrans "github.com/nolan/scribecloud/internal/ent/transcription"
	entuser "github.com/nolan/scribecloud/internal/ent/user"
	"github.com/nolan/scribecloud/internal/transcriber"
)

// Transcription statuses.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

var (
	// ErrInvalidSourceURL indicates the submitted media URL is malformed.
	ErrInvalidSourceURL = errors.New("invalid source url")

	// ErrTranscriptionNotFound indicates the job does not exist or is not visible to the caller.
	ErrTranscriptionNotFound = errors.New("transcription not found")

	// ErrNotShareable indicates the job is not completed and cannot be shared.
	ErrNotShareable = errors.New("only completed transcriptions can be shared")
)

const jobTimeout = 30 * time.Minute

// TranscriptionService owns the job lifecycle: creation (with token
// debit or free-use consumption), the async run, and sharing.
type TranscriptionService struct {
	db     *ent.Client
	trans  transcriber.Transcriber
	ledger *LedgerService
	cache  *cache.Cache
	logger *slog.Logger

	// runAsync is cleared in tests to run jobs inline.
	runAsync bool
}

// NewTranscriptionService creates a new TranscriptionService.
func NewTranscriptionService(db *ent.Client, trans transcriber.Transcriber, ledger *LedgerService, c *cache.Cache, logger *slog.Logger) *TranscriptionService {
	return &TranscriptionService{
		db:       db,
		trans:    trans,
		ledger:   ledger,
		cache:    c,
		logger:   logger,
		runAsync: true,
	}
}

// TranscriptionResponse is the API projection of a job.
type TranscriptionResponse struct {
	ID              int       `json:"id"`
	SourceURL       string    `json:"sourceUrl"`
	Title           string    `json:"title"`
	DurationSeconds float64   `json:"durationSeconds"`
	Language        string    `json:"language"`
	Status          string    `json:"status"`
	Transcript      string    `json:"transcript,omitempty"`
	Error           string    `json:"error,omitempty"`
	ShareToken      string    `json:"shareToken,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toTranscriptionResponse(j *ent.Transcription) *TranscriptionResponse {
	resp := &TranscriptionResponse{
		ID:              j.ID,
		SourceURL:       j.SourceURL,
		Title:           j.Title,
		DurationSeconds: j.DurationSeconds,
		Language:        j.Language,
		Status:          j.Status,
		Transcript:      j.Transcript,
		Error:           j.Error,
		CreatedAt:       j.CreatedAt,
	}
	if j.ShareToken != nil {
		resp.ShareToken = *j.ShareToken
	}
	return resp
}

func validateSourceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidSourceURL
	}
	return nil
}

// CreateForUser submits a job for an authenticated user, debiting one
// token up front. The debit is refunded if the run fails.
func (s *TranscriptionService) CreateForUser(ctx context.Context, userID int, sourceURL, language string) (*TranscriptionResponse, error) {
	if err := validateSourceURL(sourceURL); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("transcription of %s", sourceURL)
	if _, err := s.ledger.AddTokens(ctx, userID, -TokensPerTranscription, ActionUsage, desc); err != nil {
		return nil, err
	}

	job, err := s.db.Transcription.Create().
		SetOwnerID(userID).
		SetSourceURL(sourceURL).
		SetLanguage(language).
		SetStatus(StatusQueued).
		Save(ctx)
	if err != nil {
		// Give the token back; the job never existed.
		if _, rerr := s.ledger.AddTokens(ctx, userID, TokensPerTranscription, ActionRefund, "job creation failed"); rerr != nil {
			s.logger.Error("refund after failed create", "user_id", userID, "error", rerr)
		}
		return nil, fmt.Errorf("create transcription: %w", err)
	}

	s.dispatch(job.ID)
	return toTranscriptionResponse(job), nil
}

// CreateForAnonymous submits a job for a fingerprinted client,
// consuming one free use. The client's IP and user agent seed the
// anonymous row when this is its first contact.
func (s *TranscriptionService) CreateForAnonymous(ctx context.Context, fp, ip, userAgent, sourceURL, language string) (*TranscriptionResponse, error) {
	if err := validateSourceURL(sourceURL); err != nil {
		return nil, err
	}

	if err := s.ledger.ConsumeAnonymousUse(ctx, fp, ip, userAgent); err != nil {
		return nil, err
	}

	job, err := s.db.Transcription.Create().
		SetFingerprint(fp).
		SetSourceURL(sourceURL).
		SetLanguage(language).
		SetStatus(StatusQueued).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create transcription: %w", err)
	}

	s.dispatch(job.ID)
	return toTranscriptionResponse(job), nil
}

func (s *TranscriptionService) dispatch(jobID int) {
	if !s.runAsync {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		s.runJob(ctx, jobID)
	}()
}

// runJob drives one job to a terminal status.
func (s *TranscriptionService) runJob(ctx context.Context, jobID int) {
	job, err := s.db.Transcription.Get(ctx, jobID)
	if err != nil {
		s.logger.Error("load job", "job_id", jobID, "error", err)
		return
	}

	info, err := s.trans.Probe(ctx, job.SourceURL)
	if err != nil {
		s.failJob(ctx, job, err)
		return
	}

	// Metadata is known before the transcript; surface it while the
	// job is still processing.
	job, err = job.Update().
		SetStatus(StatusProcessing).
		SetTitle(info.Title).
		SetDurationSeconds(info.DurationSeconds).
		Save(ctx)
	if err != nil {
		s.logger.Error("mark processing", "job_id", jobID, "error", err)
		return
	}

	result, err := s.trans.Transcribe(ctx, transcriber.Request{
		SourceURL: job.SourceURL,
		Language:  job.Language,
	})
	if err != nil {
		s.failJob(ctx, job, err)
		return
	}

	_, err = job.Update().
		SetStatus(StatusCompleted).
		SetTitle(result.Title).
		SetDurationSeconds(result.DurationSeconds).
		SetLanguage(result.Language).
		SetTranscript(result.Transcript).
		Save(ctx)
	if err != nil {
		s.logger.Error("save result", "job_id", jobID, "error", err)
		return
	}
	s.logger.Info("transcription completed", "job_id", jobID, "duration_s", result.DurationSeconds)
}

func (s *TranscriptionService) failJob(ctx context.Context, job *ent.Transcription, cause error) {
	if _, err := job.Update().SetStatus(StatusFailed).SetError(cause.Error()).Save(ctx); err != nil {
		s.logger.Error("mark failed", "job_id", job.ID, "error", err)
		return
	}

	// Give the spent token or free use back.
	owner, err := job.QueryOwner().Only(ctx)
	switch {
	case err == nil:
		desc := fmt.Sprintf("refund for failed transcription %d", job.ID)
		if _, rerr := s.ledger.AddTokens(ctx, owner.ID, TokensPerTranscription, ActionRefund, desc); rerr != nil {
			s.logger.Error("refund failed job", "job_id", job.ID, "user_id", owner.ID, "error", rerr)
		}
	case ent.IsNotFound(err) && job.Fingerprint != "":
		if _, rerr := s.db.AnonymousUser.Update().
			Where(
				entanon.FingerprintEQ(job.Fingerprint),
				entanon.IsTransferUsedEQ(false),
				entanon.TranscriptionCountGT(0),
			).
			AddTranscriptionCount(-1).
			Save(ctx); rerr != nil {
			s.logger.Error("return free use", "job_id", job.ID, "error", rerr)
		}
	default:
		if !ent.IsNotFound(err) {
			s.logger.Error("query job owner", "job_id", job.ID, "error", err)
		}
	}

	s.logger.Warn("transcription failed", "job_id", job.ID, "error", cause)
}

// Get returns a job visible to the caller: its owner, or the anonymous
// fingerprint that created it.
func (s *TranscriptionService) Get(ctx context.Context, jobID, userID int, fp string) (*TranscriptionResponse, error) {
	job, err := s.db.Transcription.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTranscriptionNotFound
		}
		return nil, fmt.Errorf("get transcription: %w", err)
	}

	owner, err := job.QueryOwner().Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query owner: %w", err)
	}

	visible := (owner != nil && owner.ID == userID) ||
		(owner == nil && job.Fingerprint != "" && job.Fingerprint == fp)
	if !visible {
		return nil, ErrTranscriptionNotFound
	}
	return toTranscriptionResponse(job), nil
}

// List returns the user's jobs, newest first.
func (s *TranscriptionService) List(ctx context.Context, userID int) ([]*TranscriptionResponse, error) {
	jobs, err := s.db.Transcription.Query().
		Where(enttrans.HasOwnerWith(entuser.IDEQ(userID))).
		Order(ent.Desc(enttrans.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query transcriptions: %w", err)
	}

	out := make([]*TranscriptionResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toTranscriptionResponse(j))
	}
	return out, nil
}

// Share makes a completed job publicly readable and returns its share
// token. Repeated calls return the existing token.
func (s *TranscriptionService) Share(ctx context.Context, jobID, userID int) (string, error) {
	job, err := s.db.Transcription.Query().
		Where(
			enttrans.IDEQ(jobID),
			enttrans.HasOwnerWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrTranscriptionNotFound
		}
		return "", fmt.Errorf("get transcription: %w", err)
	}

	if job.Status != StatusCompleted {
		return "", ErrNotShareable
	}
	if job.ShareToken != nil {
		return *job.ShareToken, nil
	}

	token := uuid.NewString()
	if _, err := job.Update().SetShareToken(token).Save(ctx); err != nil {
		return "", fmt.Errorf("set share token: %w", err)
	}
	return token, nil
}

// SharedTranscript is the public projection of a shared job.
type SharedTranscript struct {
	Title           string  `json:"title"`
	DurationSeconds float64 `json:"durationSeconds"`
	Language        string  `json:"language"`
	Transcript      string  `json:"transcript"`
}

// GetShared serves a publicly shared transcript by token, with a
// short-lived cache in front of the database.
func (s *TranscriptionService) GetShared(ctx context.Context, token string) (*SharedTranscript, error) {
	var cached SharedTranscript
	if err := s.cache.Get(ctx, &cached, "shared", token); err == nil {
		return &cached, nil
	}

	job, err := s.db.Transcription.Query().
		Where(
			enttrans.ShareTokenEQ(token),
			enttrans.StatusEQ(StatusCompleted),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTranscriptionNotFound
		}
		return nil, fmt.Errorf("query shared transcription: %w", err)
	}

	shared := &SharedTranscript{
		Title:           job.Title,
		DurationSeconds: job.DurationSeconds,
		Language:        job.Language,
		Transcript:      job.Transcript,
	}
	if err := s.cache.Set(ctx, shared, 5*time.Minute, "shared", token); err != nil {
		s.logger.Warn("cache shared transcript", "error", err)
	}
	return shared, nil
}
