package notificationrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/scanhive/scanhive/internal/domain"
	"github.com/scanhive/scanhive/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.NotificationPreference, error) {
	query := `
        SELECT id, user_id, last_dismissed_at
        FROM notification_preferences
        WHERE user_id = $1
    `
	var pref domain.NotificationPreference
	err := r.db.QueryRow(ctx, query, userID).Scan(&pref.ID, &pref.UserID, &pref.LastDismissedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get notification preference", zap.Error(err))
		return nil, err
	}
	return &pref, nil
}

func (r *Repository) UpsertDismissedAt(ctx context.Context, userID int, dismissedAt time.Time) (*domain.NotificationPreference, error) {
	query := `
		INSERT INTO notification_preferences (user_id, last_dismissed_at)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET last_dismissed_at = EXCLUDED.last_dismissed_at
		RETURNING id, user_id, last_dismissed_at
	`
	var pref domain.NotificationPreference
	err := r.db.QueryRow(ctx, query, userID, dismissedAt).Scan(&pref.ID, &pref.UserID, &pref.LastDismissedAt)
	if err != nil {
		zap.L().Error("can't upsert notification preference", zap.Error(err))
		return nil, err
	}
	return &pref, nil
}
