package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dog-ratings/internal/domain/dogs"
)

type DogsRepo struct {
	db *sql.DB
}

func NewDogsRepo(db *sql.DB) *DogsRepo {
	return &DogsRepo{db: db}
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO dogs (
			id, name, license, owner_id, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		d.ID,
		d.Name,
		d.License,
		d.OwnerID,
		toNullFloat(d.Age),
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE dogs
		SET
			name = $2,
			license = $3,
			owner_id = $4,
			age = $5,
			updated_at = $6
		WHERE id = $1
	`,
		d.ID,
		d.Name,
		d.License,
		d.OwnerID,
		toNullFloat(d.Age),
		d.UpdatedAt,
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

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dogs.Dog{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, license, owner_id, age, created_at, updated_at
		FROM dogs
		WHERE id = $1
	`, id)

	return scanDog(row.Scan)
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, license, owner_id, age, created_at, updated_at
		FROM dogs
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dogs.Dog, 0)
	for rows.Next() {
		d, err := scanDog(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// dogColumns es la whitelist atributo => columna para uniqueness.
// Nunca interpolar el attr directo en el SQL.
var dogColumns = map[string]string{
	"name":    "name",
	"license": "license",
}

func (r *DogsRepo) ExistsWithValue(ctx context.Context, attr, value, excludeID string) (bool, error) {
	col, ok := dogColumns[attr]
	if !ok {
		return false, fmt.Errorf("unknown dog attribute %q", attr)
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM dogs WHERE `+col+` = $1 AND id <> $2)`,
		value, excludeID,
	).Scan(&exists)
	return exists, err
}

func scanDog(scan func(dest ...any) error) (dogs.Dog, error) {
	var d dogs.Dog
	var age sql.NullFloat64
	if err := scan(
		&d.ID,
		&d.Name,
		&d.License,
		&d.OwnerID,
		&age,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return dogs.Dog{}, ErrNotFound
		}
		return dogs.Dog{}, err
	}

	if age.Valid {
		v := age.Float64
		d.Age = &v
	}
	return d, nil
}

func toNullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
