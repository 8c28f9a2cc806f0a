package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

type ContestRepository interface {
	Create(ctx context.Context, contest *model.Contest) error
	FindByID(ctx context.Context, id int64) (*model.Contest, error)
}

type pgContestRepository struct {
	db *sql.DB
}

func NewPgContestRepository(db *sql.DB) ContestRepository {
	return &pgContestRepository{db: db}
}

func (r *pgContestRepository) Create(ctx context.Context, c *model.Contest) error {
	query := `INSERT INTO contests (title, slug, description, start_time, end_time, creator_id)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Slug, c.Description, c.StartTime, c.EndTime, c.CreatorID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgContestRepository.Create: %w", err)
	}
	normalizeContestTimes(c)
	return nil
}

func (r *pgContestRepository) FindByID(ctx context.Context, id int64) (*model.Contest, error) {
	query := `SELECT id, title, slug, description, start_time, end_time, creator_id, created_at
	          FROM contests WHERE id = $1`
	c := &model.Contest{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Title, &c.Slug, &c.Description, &c.StartTime, &c.EndTime, &c.CreatorID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrContestNotFound
		}
		return nil, fmt.Errorf("pgContestRepository.FindByID: %w", err)
	}
	normalizeContestTimes(c)
	return c, nil
}

// normalizeContestTimes forces UTC and millisecond precision so serialized
// timestamps stay in the documented ISO-8601 shape regardless of what
// precision Postgres hands back.
func normalizeContestTimes(c *model.Contest) {
	c.StartTime = c.StartTime.UTC().Truncate(time.Millisecond)
	c.EndTime = c.EndTime.UTC().Truncate(time.Millisecond)
}
