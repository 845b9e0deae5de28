package achievements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"MILESTONES_BACK-END/internal/common"
	"MILESTONES_BACK-END/internal/dbx"
	"MILESTONES_BACK-END/internal/models"
)

const columns = `id, date, title, description, age_years, age_months, age_days, tags, photo_url, created_at, updated_at`

const (
	qList = `SELECT ` + columns + ` FROM achievements ORDER BY date DESC, created_at DESC`

	qGet = `SELECT ` + columns + ` FROM achievements WHERE id = $1`

	qInsert = `INSERT INTO achievements (id, date, title, description, age_years, age_months, age_days, tags, photo_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + columns

	qUpdate = `UPDATE achievements
SET date = $2, title = $3, description = $4, age_years = $5, age_months = $6, age_days = $7,
    tags = $8, photo_url = $9, updated_at = now()
WHERE id = $1
RETURNING ` + columns

	qDelete = `DELETE FROM achievements WHERE id = $1 RETURNING ` + columns

	qLockPhoto = `SELECT photo_url FROM achievements WHERE id = $1 FOR UPDATE`

	qSetPhoto = `UPDATE achievements SET photo_url = $2, updated_at = now() WHERE id = $1 RETURNING ` + columns
)

// PostgresRepository stores achievements in the achievements table.
type PostgresRepository struct {
	db    dbx.DB
	newID func() string
}

func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db, newID: uuid.NewString}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Achievement, error) {
	rows, err := r.db.Query(ctx, qList)
	if err != nil {
		return nil, fmt.Errorf("select achievements: %w", err)
	}
	defer rows.Close()

	items := make([]models.Achievement, 0)
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return items, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (models.Achievement, error) {
	a, err := scanAchievement(r.db.QueryRow(ctx, qGet, id))
	if err != nil {
		return models.Achievement{}, notFoundOr(err, "select achievement")
	}
	return a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in models.AchievementInput) (models.Achievement, error) {
	args := append([]any{r.newID()}, inputArgs(in)...)
	a, err := scanAchievement(r.db.QueryRow(ctx, qInsert, args...))
	if err != nil {
		return models.Achievement{}, fmt.Errorf("insert achievement: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, in models.AchievementInput) (Change, error) {
	return r.withLockedPhoto(ctx, id, func(tx pgx.Tx, prev *string) (models.Achievement, error) {
		if in.KeepPhoto {
			in.PhotoURL = prev
		}
		args := append([]any{id}, inputArgs(in)...)
		a, err := scanAchievement(tx.QueryRow(ctx, qUpdate, args...))
		if err != nil {
			return models.Achievement{}, notFoundOr(err, "update achievement")
		}
		return a, nil
	})
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (models.Achievement, error) {
	a, err := scanAchievement(r.db.QueryRow(ctx, qDelete, id))
	if err != nil {
		return models.Achievement{}, notFoundOr(err, "delete achievement")
	}
	return a, nil
}

func (r *PostgresRepository) AttachPhoto(ctx context.Context, id, photoURL string) (Change, error) {
	return r.withLockedPhoto(ctx, id, func(tx pgx.Tx, _ *string) (models.Achievement, error) {
		a, err := scanAchievement(tx.QueryRow(ctx, qSetPhoto, id, photoURL))
		if err != nil {
			return models.Achievement{}, notFoundOr(err, "attach photo")
		}
		return a, nil
	})
}

func (r *PostgresRepository) DetachPhoto(ctx context.Context, id string) (Change, error) {
	return r.withLockedPhoto(ctx, id, func(tx pgx.Tx, prev *string) (models.Achievement, error) {
		if prev == nil {
			return models.Achievement{}, common.ErrPhotoNotFound
		}
		a, err := scanAchievement(tx.QueryRow(ctx, qSetPhoto, id, nil))
		if err != nil {
			return models.Achievement{}, notFoundOr(err, "detach photo")
		}
		return a, nil
	})
}

// withLockedPhoto runs fn in a transaction holding the row lock, passing the
// photo URL stored before fn's write.
func (r *PostgresRepository) withLockedPhoto(ctx context.Context, id string, fn func(tx pgx.Tx, prev *string) (models.Achievement, error)) (Change, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Change{}, fmt.Errorf("begin tx: %w", err)
	}

	var prev *string
	if err := tx.QueryRow(ctx, qLockPhoto, id).Scan(&prev); err != nil {
		_ = tx.Rollback(ctx)
		return Change{}, notFoundOr(err, "lock achievement")
	}

	a, err := fn(tx, prev)
	if err != nil {
		_ = tx.Rollback(ctx)
		return Change{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Change{}, fmt.Errorf("commit tx: %w", err)
	}
	return Change{Achievement: a, PreviousPhoto: prev}, nil
}

func inputArgs(in models.AchievementInput) []any {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	return []any{
		dateArg(in.Date),
		in.Title,
		in.Description,
		int32(in.AgeAtEvent.Years),
		int32(in.AgeAtEvent.Months),
		int32(in.AgeAtEvent.Days),
		tags,
		in.PhotoURL,
	}
}

func dateArg(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func scanAchievement(row pgx.Row) (models.Achievement, error) {
	var (
		a    models.Achievement
		date time.Time
	)
	err := row.Scan(
		&a.ID,
		&date,
		&a.Title,
		&a.Description,
		&a.AgeYears,
		&a.AgeMonths,
		&a.AgeDays,
		&a.Tags,
		&a.PhotoURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return models.Achievement{}, err
	}
	a.Date = civil.DateOf(date)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return a, nil
}

func notFoundOr(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return common.ErrNotFound
	}
	if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrPhotoNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
