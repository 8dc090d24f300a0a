package applicationrepo

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

const applicationColumns = `id, user_id, full_name, phone, address, details, status, reviewed_by, reviewed_at, created_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	err := row.Scan(&app.ID, &app.UserID, &app.FullName, &app.Phone, &app.Address,
		&app.Details, &app.Status, &app.ReviewedBy, &app.ReviewedAt, &app.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) (*domain.Application, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM applications
        WHERE user_id = $1
    `
	app, err := scanApplication(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application by user", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Application, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM applications
        WHERE id = $1
    `
	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `
		INSERT INTO applications (user_id, full_name, phone, address, details, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, app.UserID, app.FullName, app.Phone, app.Address, app.Details, app.Status).
		Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't save application", zap.Error(err))
		return nil, err
	}
	return app, nil
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.Application, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM applications
        WHERE status = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("can't list applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// Review is guarded on the pending status so concurrent reviews cannot
// overwrite a terminal decision; the loser sees no row and gets nil.
func (r *Repository) Review(ctx context.Context, id int, status string, reviewerID int, reviewedAt time.Time) (*domain.Application, error) {
	query := `
		UPDATE applications
		SET status = $1, reviewed_by = $2, reviewed_at = $3
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + applicationColumns + `
	`
	app, err := scanApplication(r.db.QueryRow(ctx, query, status, reviewerID, reviewedAt, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't review application", zap.Error(err))
		return nil, err
	}
	return app, nil
}
