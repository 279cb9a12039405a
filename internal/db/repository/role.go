package repository

import (
	"context"
	"database/sql"
)

type RoleRepo struct {
	db *sql.DB
}

func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{db: db}
}

func (r *RoleRepo) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE name = ?)`, name).Scan(&exists)
	return exists, err
}

func (r *RoleRepo) Ensure(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name)
	return err
}
