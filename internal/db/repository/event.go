package repository

import (
	"context"
	"database/sql"
	"errors"

	"vms/internal/domain"
)

// querier is satisfied by both *sql.DB and *sql.Tx so event loading can run
// inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type EventRepo struct {
	db *sql.DB
}

// NewEventRepo creates an EventRepo. Pass the write pool: assignment
// mutations rely on its serialized transactions for atomicity.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, name, description, location, start_time, end_time, capacity, organizer_user_id`

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (name, description, location, start_time, end_time, capacity, organizer_user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Description, e.Location, e.StartTime, e.EndTime, nullInt64(e.Capacity), e.OrganizerID)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *EventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return getEvent(ctx, r.db, id)
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET name = ?, description = ?, location = ?, start_time = ?, end_time = ?, capacity = ?
		 WHERE id = ?`,
		e.Name, e.Description, e.Location, e.StartTime, e.EndTime, nullInt64(e.Capacity), e.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("event %d not found", e.ID)
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("event %d not found", id)
	}
	return nil
}

func (r *EventRepo) List(ctx context.Context) ([]domain.Event, error) {
	return r.listWhere(ctx, ``)
}

func (r *EventRepo) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	return r.listWhere(ctx, `WHERE organizer_user_id = ?`, organizerID)
}

func (r *EventRepo) listWhere(ctx context.Context, where string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events `+where+` ORDER BY start_time, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range events {
		ids, err := assignedIDs(ctx, r.db, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].AssignedVolunteerIDs = ids
	}
	return events, nil
}

// Assign adds the volunteer to the event's assigned set. The load, the
// duplicate and capacity checks, and the insert run in one transaction on
// the serialized write pool, so the check-then-act is indivisible with
// respect to every other Assign/Unassign call.
func (r *EventRepo) Assign(ctx context.Context, eventID, volunteerID int64) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	e, err := getEvent(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	var volunteerExists bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM volunteers WHERE id = ?)`, volunteerID).Scan(&volunteerExists); err != nil {
		return nil, err
	}
	if !volunteerExists {
		return nil, domain.ErrNotFound("volunteer %d not found", volunteerID)
	}

	if e.HasVolunteer(volunteerID) {
		return nil, domain.ErrConflict("volunteer %d is already registered for event %d", volunteerID, eventID)
	}
	if e.Full() {
		return nil, domain.ErrCapacity("event %d has no remaining slots (capacity %d)", eventID, *e.Capacity)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO event_volunteers (event_id, volunteer_id) VALUES (?, ?)`,
		eventID, volunteerID); err != nil {
		return nil, mapDBError(err)
	}

	e, err = getEvent(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return e, nil
}

// Unassign removes the volunteer from the event's assigned set. Removing
// an absent pairing is a no-op success; only a missing event is an error.
func (r *EventRepo) Unassign(ctx context.Context, eventID, volunteerID int64) (*domain.Event, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := getEvent(ctx, tx, eventID); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM event_volunteers WHERE event_id = ? AND volunteer_id = ?`,
		eventID, volunteerID); err != nil {
		return nil, err
	}

	e, err := getEvent(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepo) EventIDsForVolunteer(ctx context.Context, volunteerID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT event_id FROM event_volunteers WHERE volunteer_id = ? ORDER BY event_id`, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func getEvent(ctx context.Context, q querier, id int64) (*domain.Event, error) {
	row := q.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEventRow(row)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.ErrNotFound("event %d not found", id)
		}
		return nil, err
	}
	ids, err := assignedIDs(ctx, q, id)
	if err != nil {
		return nil, err
	}
	e.AssignedVolunteerIDs = ids
	return e, nil
}

func assignedIDs(ctx context.Context, q querier, eventID int64) ([]int64, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT volunteer_id FROM event_volunteers WHERE event_id = ? ORDER BY volunteer_id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var (
		e        domain.Event
		capacity sql.NullInt64
	)
	if err := s.Scan(&e.ID, &e.Name, &e.Description, &e.Location,
		&e.StartTime, &e.EndTime, &capacity, &e.OrganizerID); err != nil {
		return nil, err
	}
	e.Capacity = fromNullInt64(capacity)
	return &e, nil
}

func scanEventRow(row *sql.Row) (*domain.Event, error) {
	e, err := scanEvent(row)
	if err != nil {
		return nil, mapDBError(err)
	}
	return e, nil
}
