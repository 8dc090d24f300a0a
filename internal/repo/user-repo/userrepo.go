package userrepo

import (
	"context"

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

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, email, name, password_hash, is_admin, created_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	err := repo.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.Name, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT id, email, name, password_hash, is_admin, created_at
        FROM users
        ORDER BY created_at DESC
    `
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
