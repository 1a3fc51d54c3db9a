package userRepo

import (
	"context"
	"errors"
	"fmt"

	"file-catalog/internal/model/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepo struct {
	conn DB
}

func New(conn DB) *UserRepo {
	return &UserRepo{conn: conn}
}

func (r *UserRepo) Migrate(ctx context.Context) error {
	_, err := r.conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS catalog_users (
		id       TEXT PRIMARY KEY,
		position BIGSERIAL,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create catalog_users: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts users only when the table has no rows yet.
func (r *UserRepo) SeedIfEmpty(ctx context.Context, users []user.User) error {
	var count int
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, u := range users {
		_, err := r.conn.Exec(ctx,
			`INSERT INTO catalog_users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, u.Email)
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
		}
	}
	return nil
}

func (r *UserRepo) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, name, email FROM catalog_users ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) GetUser(ctx context.Context, id string) (user.User, error) {
	var u user.User
	err := r.conn.QueryRow(ctx, `SELECT id, name, email FROM catalog_users WHERE id=$1`, id).
		Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return u, nil
}
