package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

// LeaderboardRow is one user's aggregated score for a contest, before ranking
// is assigned.
type LeaderboardRow struct {
	UserID      int64
	Name        string
	TotalPoints int
}

type SubmissionRepository interface {
	CreateMCQSubmission(ctx context.Context, s *model.MCQSubmission) error
	CreateDSASubmission(ctx context.Context, s *model.DSASubmission) error
	GetLeaderboard(ctx context.Context, contestID int64) ([]LeaderboardRow, error)
}

type pgSubmissionRepository struct {
	db *sql.DB
}

func NewPgSubmissionRepository(db *sql.DB) SubmissionRepository {
	return &pgSubmissionRepository{db: db}
}

func (r *pgSubmissionRepository) CreateMCQSubmission(ctx context.Context, s *model.MCQSubmission) error {
	query := `INSERT INTO mcq_submissions (user_id, question_id, contest_id, selected_option_index, is_correct, points_earned)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.QuestionID, s.ContestID, s.SelectedOptionIndex, s.IsCorrect, s.PointsEarned,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return common.ErrAlreadySubmitted
		}
		return fmt.Errorf("pgSubmissionRepository.CreateMCQSubmission: %w", err)
	}
	return nil
}

func (r *pgSubmissionRepository) CreateDSASubmission(ctx context.Context, s *model.DSASubmission) error {
	query := `INSERT INTO dsa_submissions (user_id, problem_id, code, language, status, points_earned, test_cases_passed, total_test_cases)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.ProblemID, s.Code, s.Language, s.Status, s.PointsEarned, s.TestCasesPassed, s.TotalTestCases,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgSubmissionRepository.CreateDSASubmission: %w", err)
	}
	return nil
}

// GetLeaderboard sums each user's MCQ points with their best attempt per
// problem. Users with no submissions in the contest do not appear.
func (r *pgSubmissionRepository) GetLeaderboard(ctx context.Context, contestID int64) ([]LeaderboardRow, error) {
	query := `
	WITH mcq_points AS (
		SELECT user_id, SUM(points_earned) AS pts
		FROM mcq_submissions
		WHERE contest_id = $1
		GROUP BY user_id
	),
	dsa_points AS (
		SELECT best.user_id, SUM(best.pts) AS pts
		FROM (
			SELECT ds.user_id, ds.problem_id, MAX(ds.points_earned) AS pts
			FROM dsa_submissions ds
			JOIN dsa_problems p ON p.id = ds.problem_id
			WHERE p.contest_id = $1
			GROUP BY ds.user_id, ds.problem_id
		) best
		GROUP BY best.user_id
	),
	totals AS (
		SELECT COALESCE(m.user_id, d.user_id) AS user_id,
		       COALESCE(m.pts, 0) + COALESCE(d.pts, 0) AS total
		FROM mcq_points m
		FULL OUTER JOIN dsa_points d ON m.user_id = d.user_id
	)
	SELECT t.user_id, u.name, t.total
	FROM totals t
	JOIN users u ON u.id = t.user_id
	ORDER BY t.total DESC, u.name ASC`

	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.GetLeaderboard query: %w", err)
	}
	defer rows.Close()

	entries := []LeaderboardRow{}
	for rows.Next() {
		var row LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.Name, &row.TotalPoints); err != nil {
			return nil, fmt.Errorf("pgSubmissionRepository.GetLeaderboard scan: %w", err)
		}
		entries = append(entries, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSubmissionRepository.GetLeaderboard rows.Err: %w", err)
	}
	return entries, nil
}
