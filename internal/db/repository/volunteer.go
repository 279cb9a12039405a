package repository

import (
	"context"
	"database/sql"

	"vms/internal/domain"
)

type VolunteerRepo struct {
	db *sql.DB
}

func NewVolunteerRepo(db *sql.DB) *VolunteerRepo {
	return &VolunteerRepo{db: db}
}

const volunteerColumns = `id, user_id, phone_number, skills, availability`

func (r *VolunteerRepo) Create(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO volunteers (user_id, phone_number, skills, availability) VALUES (?, ?, ?, ?)`,
		v.UserID, v.PhoneNumber, v.Skills, v.Availability)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *VolunteerRepo) GetByID(ctx context.Context, id int64) (*domain.Volunteer, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE id = ?`, id))
}

func (r *VolunteerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Volunteer, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers WHERE user_id = ?`, userID))
}

func (r *VolunteerRepo) scanOne(row *sql.Row) (*domain.Volunteer, error) {
	var v domain.Volunteer
	err := row.Scan(&v.ID, &v.UserID, &v.PhoneNumber, &v.Skills, &v.Availability)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &v, nil
}

func (r *VolunteerRepo) Update(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE volunteers SET phone_number = ?, skills = ?, availability = ? WHERE id = ?`,
		v.PhoneNumber, v.Skills, v.Availability, v.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("volunteer %d not found", v.ID)
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VolunteerRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM volunteers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("volunteer %d not found", id)
	}
	return nil
}

func (r *VolunteerRepo) List(ctx context.Context) ([]domain.Volunteer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+volunteerColumns+` FROM volunteers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		if err := rows.Scan(&v.ID, &v.UserID, &v.PhoneNumber, &v.Skills, &v.Availability); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
