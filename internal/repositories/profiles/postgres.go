package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/dbx"
	"MILESTONES_BACK-END/internal/models"
)

const columns = `id, nickname, gender, birthday, created_at, updated_at`

const (
	// Ordered so that a stray second row never shadows the newest one.
	qGet = `SELECT ` + columns + ` FROM child_profile ORDER BY created_at DESC LIMIT 1`

	qLock = `SELECT id FROM child_profile WHERE id = $1 FOR UPDATE`

	qInsert = `INSERT INTO child_profile (id, nickname, gender, birthday)
VALUES ($1, $2, $3, $4)
RETURNING ` + columns

	qUpdate = `UPDATE child_profile
SET nickname = $2, gender = $3, birthday = $4, updated_at = now()
WHERE id = $1
RETURNING ` + columns
)

const uniqueViolation = "23505"

// PostgresRepository stores the profile in child_profile under models.ChildProfileID.
type PostgresRepository struct {
	db dbx.DB
}

func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context) (models.ChildProfile, error) {
	p, err := scanProfile(r.db.QueryRow(ctx, qGet))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ChildProfile{}, common.ErrNotFound
		}
		return models.ChildProfile{}, fmt.Errorf("select profile: %w", err)
	}
	return p, nil
}

// Upsert locks the singleton row if it exists and updates it, otherwise
// inserts it. A concurrent insert that wins the race surfaces as a unique
// violation and is followed by a plain update.
func (r *PostgresRepository) Upsert(ctx context.Context, in models.ProfileInput) (models.ChildProfile, error) {
	args := []any{models.ChildProfileID, in.Nickname, in.Gender, in.Birthday.In(time.UTC)}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.ChildProfile{}, fmt.Errorf("begin tx: %w", err)
	}

	var id string
	stmt := qUpdate
	if err := tx.QueryRow(ctx, qLock, models.ChildProfileID).Scan(&id); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			_ = tx.Rollback(ctx)
			return models.ChildProfile{}, fmt.Errorf("lock profile: %w", err)
		}
		stmt = qInsert
	}

	p, err := scanProfile(tx.QueryRow(ctx, stmt, args...))
	if err != nil {
		_ = tx.Rollback(ctx)

		var pgErr *pgconn.PgError
		if stmt == qInsert && errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			p, err = scanProfile(r.db.QueryRow(ctx, qUpdate, args...))
			if err != nil {
				return models.ChildProfile{}, fmt.Errorf("update profile: %w", err)
			}
			return p, nil
		}
		return models.ChildProfile{}, fmt.Errorf("write profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.ChildProfile{}, fmt.Errorf("commit tx: %w", err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (models.ChildProfile, error) {
	var (
		p        models.ChildProfile
		birthday time.Time
	)
	if err := row.Scan(&p.ID, &p.Nickname, &p.Gender, &birthday, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.ChildProfile{}, err
	}
	p.Birthday = civil.DateOf(birthday)
	return p, nil
}
