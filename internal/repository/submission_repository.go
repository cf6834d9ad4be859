package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/moldovancsaba/fancamera-sub002/internal/domain"
)

type SubmissionRepository interface {
	Insert(ctx context.Context, sub *domain.Submission) error
	ListActive(ctx context.Context, eventID string) ([]domain.Submission, error)
	IncrementPlayCounts(ctx context.Context, ids []string) error
	Hide(ctx context.Context, id string) error
}

type submissionRepository struct {
	db      *sql.DB
	log     *zap.Logger
	builder sq.StatementBuilderType
}

func NewSubmissionRepository(db *sql.DB, log *zap.Logger) (SubmissionRepository, error) {
	repo := &submissionRepository{
		db:      db,
		log:     log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}

	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return repo, nil
}

const submissionsSchema = `
CREATE TABLE IF NOT EXISTS submissions (
    id            TEXT PRIMARY KEY,
    event_id      TEXT NOT NULL,
    original_name TEXT NOT NULL DEFAULT '',
    storage_path  TEXT NOT NULL,
    content_type  TEXT NOT NULL DEFAULT '',
    width         INTEGER NOT NULL DEFAULT 0,
    height        INTEGER NOT NULL DEFAULT 0,
    play_count    INTEGER NOT NULL DEFAULT 0,
    hidden        BOOLEAN NOT NULL DEFAULT FALSE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS submissions_event_rotation_idx
    ON submissions (event_id, hidden, play_count, created_at);
`

func (r *submissionRepository) ensureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, submissionsSchema); err != nil {
		return err
	}

	r.log.Info("Submissions schema ensured")
	return nil
}

func (r *submissionRepository) Insert(ctx context.Context, sub *domain.Submission) error {
	query, args, err := r.builder.
		Insert("submissions").
		Columns("id", "event_id", "original_name", "storage_path", "content_type",
			"width", "height", "play_count", "hidden", "created_at").
		Values(sub.ID, sub.EventID, sub.OriginalName, sub.StoragePath, sub.ContentType,
			sub.Width, sub.Height, sub.PlayCount, sub.Hidden, sub.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("Failed to insert submission",
			zap.String("id", sub.ID),
			zap.String("event_id", sub.EventID),
			zap.Error(err))
		return fmt.Errorf("insert submission: %w", err)
	}

	return nil
}

// ListActive returns the not-hidden submissions of an event ordered by
// (play_count, created_at), which is the rotation fairness order.
func (r *submissionRepository) ListActive(ctx context.Context, eventID string) ([]domain.Submission, error) {
	query, args, err := r.builder.
		Select("id", "event_id", "original_name", "storage_path", "content_type",
			"width", "height", "play_count", "hidden", "created_at").
		From("submissions").
		Where(sq.Eq{"event_id": eventID, "hidden": false}).
		OrderBy("play_count ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(&s.ID, &s.EventID, &s.OriginalName, &s.StoragePath, &s.ContentType,
			&s.Width, &s.Height, &s.PlayCount, &s.Hidden, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return subs, nil
}

// IncrementPlayCounts bumps the play counter of every listed submission by
// one. Called after a display cycle with the flattened playlist ids.
func (r *submissionRepository) IncrementPlayCounts(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE submissions SET play_count = play_count + 1 WHERE id = ANY($1)`

	result, err := r.db.ExecContext(ctx, query, pq.StringArray(ids))
	if err != nil {
		r.log.Error("Failed to increment play counts",
			zap.Int("ids", len(ids)),
			zap.Error(err))
		return fmt.Errorf("increment play counts: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && int(affected) != len(ids) {
		r.log.Warn("Play count update touched fewer rows than scheduled",
			zap.Int("scheduled", len(ids)),
			zap.Int64("updated", affected))
	}

	return nil
}

func (r *submissionRepository) Hide(ctx context.Context, id string) error {
	query, args, err := r.builder.
		Update("submissions").
		Set("hidden", true).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("hide submission: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	r.log.Info("Submission hidden", zap.String("id", id))
	return nil
}
