package service

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/moldovancsaba/fancamera-sub002/internal/config"
	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
	"github.com/moldovancsaba/fancamera-sub002/internal/playlist"
	"github.com/moldovancsaba/fancamera-sub002/internal/repository"
	"github.com/moldovancsaba/fancamera-sub002/pkg/utils"
)

type SlideshowService interface {
	UploadSubmission(ctx context.Context, eventID string, fileBytes []byte, filename, contentType string) (*domain.Submission, error)
	BuildSlideshow(ctx context.Context, eventID string, limit int) (domain.Playlist, error)
	ListSubmissions(ctx context.Context, eventID string) ([]domain.Submission, error)
	HideSubmission(ctx context.Context, id string) error
	GetImage(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type slideshowService struct {
	subs  repository.SubmissionRepository
	media repository.MediaStore
	cfg   *config.Config
	log   *zap.Logger
	probe *utils.ImageProbe
}

func NewSlideshowService(subs repository.SubmissionRepository, media repository.MediaStore, cfg *config.Config, log *zap.Logger) SlideshowService {
	return &slideshowService{
		subs:  subs,
		media: media,
		cfg:   cfg,
		log:   log,
		probe: utils.NewImageProbe(log),
	}
}

func (s *slideshowService) UploadSubmission(ctx context.Context, eventID string, fileBytes []byte, filename, contentType string) (*domain.Submission, error) {
	submissionID := uuid.New().String()
	ext := filepath.Ext(filename)
	key := "submissions/" + eventID + "/" + submissionID + ext

	if contentType == "" {
		contentType = utils.ContentTypeForFilename(filename)
	}

	width, height := s.probe.Dimensions(fileBytes)

	reader := bytes.NewReader(fileBytes)
	if err := s.media.UploadObject(ctx, key, reader, int64(len(fileBytes)), contentType); err != nil {
		return nil, err
	}

	sub := &domain.Submission{
		ID:           submissionID,
		EventID:      eventID,
		OriginalName: filename,
		StoragePath:  key,
		ContentType:  contentType,
		Width:        width,
		Height:       height,
		PlayCount:    0,
		CreatedAt:    time.Now(),
	}

	if err := s.subs.Insert(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info("Submission uploaded",
		zap.String("id", submissionID),
		zap.String("event_id", eventID),
		zap.String("filename", filename),
		zap.Int("width", width),
		zap.Int("height", height))

	return sub, nil
}

// BuildSlideshow composes the next display cycle for an event and records
// each scheduled submission as played. The composition itself is pure; only
// the play-count write touches storage. If that write fails the playlist is
// still returned: a refresh races the previous cycle's accounting anyway, so
// fairness here is eventual, not strict.
func (s *slideshowService) BuildSlideshow(ctx context.Context, eventID string, limit int) (domain.Playlist, error) {
	pool, err := s.subs.ListActive(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sizes := playlist.GroupSizes{
		Portrait: s.cfg.Slideshow.PortraitGroupSize,
		Square:   s.cfg.Slideshow.SquareGroupSize,
	}

	pl, dropped := playlist.Compose(pool, limit, sizes)
	if dropped > 0 {
		s.log.Warn("Unclassifiable submissions skipped from rotation",
			zap.String("event_id", eventID),
			zap.Int("skipped", dropped))
	}

	ids := playlist.ExtractIDs(pl)
	if err := s.subs.IncrementPlayCounts(ctx, ids); err != nil {
		s.log.Error("Failed to record play counts",
			zap.String("event_id", eventID),
			zap.Int("ids", len(ids)),
			zap.Error(err))
	}

	s.log.Info("Slideshow composed",
		zap.String("event_id", eventID),
		zap.Int("pool", len(pool)),
		zap.Int("units", len(pl)),
		zap.Int("images", len(ids)))

	return pl, nil
}

func (s *slideshowService) ListSubmissions(ctx context.Context, eventID string) ([]domain.Submission, error) {
	return s.subs.ListActive(ctx, eventID)
}

func (s *slideshowService) HideSubmission(ctx context.Context, id string) error {
	return s.subs.Hide(ctx, id)
}

func (s *slideshowService) GetImage(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.media.DownloadObject(ctx, key)
}
