package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-ratings/internal/domain/people"
	"dog-ratings/internal/validation"
)

type PeopleRepo struct {
	db *sql.DB
}

func NewPeopleRepo(db *sql.DB) *PeopleRepo {
	return &PeopleRepo{db: db}
}

func (r *PeopleRepo) Create(ctx context.Context, p people.Person) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO people (
			id, name, hometown_state, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		p.ID,
		p.Name,
		toNullState(p.HometownState),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PeopleRepo) Update(ctx context.Context, p people.Person) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE people
		SET
			name = $2,
			hometown_state = $3,
			updated_at = $4
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		toNullState(p.HometownState),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PeopleRepo) GetByID(ctx context.Context, id string) (people.Person, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return people.Person{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, hometown_state, created_at, updated_at
		FROM people
		WHERE id = $1
	`, id)

	return scanPerson(row.Scan)
}

func (r *PeopleRepo) List(ctx context.Context) ([]people.Person, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, hometown_state, created_at, updated_at
		FROM people
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]people.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var personColumns = map[string]string{
	"name": "name",
}

func (r *PeopleRepo) ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error) {
	col, ok := personColumns[attr]
	if !ok {
		return false, fmt.Errorf("unknown person attribute %q", attr)
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM people WHERE `+col+` = $1 AND id <> $2)`,
		value, excludeID,
	).Scan(&exists)
	return exists, err
}

func scanPerson(scan func(dest ...any) error) (people.Person, error) {
	var p people.Person
	var state sql.NullString
	if err := scan(
		&p.ID,
		&p.Name,
		&state,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return people.Person{}, ErrNotFound
		}
		return people.Person{}, err
	}

	// A esta altura el estado ya pasó validación: en DB es text o null.
	if state.Valid {
		p.HometownState = validation.String(state.String)
	} else {
		p.HometownState = validation.Null
	}
	return p, nil
}

func toNullState(v validation.Value) sql.NullString {
	if s, ok := v.AsString(); ok {
		return sql.NullString{String: s, Valid: true}
	}
	return sql.NullString{}
}
