package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

type ProblemRepository interface {
	Create(ctx context.Context, p *model.Problem) error
	FindByID(ctx context.Context, id int64) (*model.Problem, error)
	ListByContestID(ctx context.Context, contestID int64) ([]model.Problem, error)
}

type pgProblemRepository struct {
	db *sql.DB
}

func NewPgProblemRepository(db *sql.DB) ProblemRepository {
	return &pgProblemRepository{db: db}
}

// Create inserts the problem together with its test cases in one transaction
// so a half written problem never becomes visible.
func (r *pgProblemRepository) Create(ctx context.Context, p *model.Problem) error {
	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Create marshal tags: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Create begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO dsa_problems (contest_id, title, slug, description, tags, points, time_limit_ms, memory_limit_mb)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query,
		p.ContestID, p.Title, p.Slug, p.Description, tags, p.Points, p.TimeLimitMs, p.MemoryLimitMB,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgProblemRepository.Create insert problem: %w", err)
	}

	caseQuery := `INSERT INTO test_cases (problem_id, input, expected_output, is_hidden, sort_order)
	              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	for i := range p.TestCases {
		tc := &p.TestCases[i]
		tc.ProblemID = p.ID
		tc.SortOrder = i
		err = tx.QueryRowContext(ctx, caseQuery,
			tc.ProblemID, tc.Input, tc.ExpectedOutput, tc.IsHidden, tc.SortOrder,
		).Scan(&tc.ID)
		if err != nil {
			return fmt.Errorf("pgProblemRepository.Create insert test case %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("pgProblemRepository.Create commit: %w", err)
	}
	return nil
}

func (r *pgProblemRepository) FindByID(ctx context.Context, id int64) (*model.Problem, error) {
	query := `SELECT id, contest_id, title, slug, description, tags, points, time_limit_ms, memory_limit_mb, created_at
	          FROM dsa_problems WHERE id = $1`
	p := &model.Problem{}
	var tags []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.ContestID, &p.Title, &p.Slug, &p.Description, &tags, &p.Points, &p.TimeLimitMs, &p.MemoryLimitMB, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrProblemNotFound
		}
		return nil, fmt.Errorf("pgProblemRepository.FindByID: %w", err)
	}
	if err := json.Unmarshal(tags, &p.Tags); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.FindByID unmarshal tags: %w", err)
	}

	cases, err := r.testCasesByProblemID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.TestCases = cases
	return p, nil
}

func (r *pgProblemRepository) ListByContestID(ctx context.Context, contestID int64) ([]model.Problem, error) {
	query := `SELECT id, contest_id, title, slug, description, tags, points, time_limit_ms, memory_limit_mb, created_at
	          FROM dsa_problems WHERE contest_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("pgProblemRepository.ListByContestID query: %w", err)
	}
	defer rows.Close()

	problems := []model.Problem{}
	for rows.Next() {
		var p model.Problem
		var tags []byte
		if err := rows.Scan(&p.ID, &p.ContestID, &p.Title, &p.Slug, &p.Description, &tags, &p.Points, &p.TimeLimitMs, &p.MemoryLimitMB, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgProblemRepository.ListByContestID scan: %w", err)
		}
		if err := json.Unmarshal(tags, &p.Tags); err != nil {
			return nil, fmt.Errorf("pgProblemRepository.ListByContestID unmarshal tags: %w", err)
		}
		problems = append(problems, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.ListByContestID rows.Err: %w", err)
	}
	return problems, nil
}

func (r *pgProblemRepository) testCasesByProblemID(ctx context.Context, problemID int64) ([]model.TestCase, error) {
	query := `SELECT id, problem_id, input, expected_output, is_hidden, sort_order
	          FROM test_cases WHERE problem_id = $1 ORDER BY sort_order ASC`
	rows, err := r.db.QueryContext(ctx, query, problemID)
	if err != nil {
		return nil, fmt.Errorf("pgProblemRepository.testCasesByProblemID query: %w", err)
	}
	defer rows.Close()

	cases := []model.TestCase{}
	for rows.Next() {
		var tc model.TestCase
		if err := rows.Scan(&tc.ID, &tc.ProblemID, &tc.Input, &tc.ExpectedOutput, &tc.IsHidden, &tc.SortOrder); err != nil {
			return nil, fmt.Errorf("pgProblemRepository.testCasesByProblemID scan: %w", err)
		}
		cases = append(cases, tc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgProblemRepository.testCasesByProblemID rows.Err: %w", err)
	}
	return cases, nil
}
