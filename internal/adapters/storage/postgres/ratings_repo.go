package postgres

import (
	"context"
	"database/sql"
	"strings"

	"dog-ratings/internal/domain/ratings"
)

type RatingsRepo struct {
	db *sql.DB
}

func NewRatingsRepo(db *sql.DB) *RatingsRepo {
	return &RatingsRepo{db: db}
}

func (r *RatingsRepo) Create(ctx context.Context, rt ratings.Rating) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ratings (
			id, dog_id, judge_id, paws, comment, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rt.ID,
		rt.DogID,
		rt.JudgeID,
		toNullFloat(rt.Paws),
		rt.Comment,
		rt.CreatedAt,
	)
	return err
}

func (r *RatingsRepo) GetByID(ctx context.Context, id string) (ratings.Rating, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ratings.Rating{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, dog_id, judge_id, paws, comment, created_at
		FROM ratings
		WHERE id = $1
	`, id)

	return scanRating(row.Scan)
}

func (r *RatingsRepo) ListByDog(ctx context.Context, dogID string) ([]ratings.Rating, error) {
	return r.list(ctx, `dog_id`, dogID)
}

func (r *RatingsRepo) ListByJudge(ctx context.Context, judgeID string) ([]ratings.Rating, error) {
	return r.list(ctx, `judge_id`, judgeID)
}

func (r *RatingsRepo) list(ctx context.Context, col, id string) ([]ratings.Rating, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	// col viene de este archivo (dog_id/judge_id), nunca del caller.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dog_id, judge_id, paws, comment, created_at
		FROM ratings
		WHERE `+col+` = $1
		ORDER BY created_at ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ratings.Rating, 0)
	for rows.Next() {
		rt, err := scanRating(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func scanRating(scan func(dest ...any) error) (ratings.Rating, error) {
	var rt ratings.Rating
	var paws sql.NullFloat64
	if err := scan(
		&rt.ID,
		&rt.DogID,
		&rt.JudgeID,
		&paws,
		&rt.Comment,
		&rt.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return ratings.Rating{}, ErrNotFound
		}
		return ratings.Rating{}, err
	}

	if paws.Valid {
		v := paws.Float64
		rt.Paws = &v
	}
	return rt, nil
}
