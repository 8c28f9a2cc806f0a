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

type QuestionRepository interface {
	Create(ctx context.Context, q *model.Question) error
	FindByID(ctx context.Context, id int64) (*model.Question, error)
	ListByContestID(ctx context.Context, contestID int64) ([]model.Question, error)
}

type pgQuestionRepository struct {
	db *sql.DB
}

func NewPgQuestionRepository(db *sql.DB) QuestionRepository {
	return &pgQuestionRepository{db: db}
}

func (r *pgQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	// Options are stored as jsonb; database/sql has no native text[] support.
	options, err := json.Marshal(q.Options)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Create marshal options: %w", err)
	}
	query := `INSERT INTO mcq_questions (contest_id, question_text, options, correct_option_index, points)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err = r.db.QueryRowContext(ctx, query,
		q.ContestID, q.QuestionText, options, q.CorrectOptionIndex, q.Points,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgQuestionRepository.Create: %w", err)
	}
	return nil
}

func (r *pgQuestionRepository) FindByID(ctx context.Context, id int64) (*model.Question, error) {
	query := `SELECT id, contest_id, question_text, options, correct_option_index, points, created_at
	          FROM mcq_questions WHERE id = $1`
	q := &model.Question{}
	var options []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.ContestID, &q.QuestionText, &options, &q.CorrectOptionIndex, &q.Points, &q.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("pgQuestionRepository.FindByID: %w", err)
	}
	if err := json.Unmarshal(options, &q.Options); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.FindByID unmarshal options: %w", err)
	}
	return q, nil
}

func (r *pgQuestionRepository) ListByContestID(ctx context.Context, contestID int64) ([]model.Question, error) {
	query := `SELECT id, contest_id, question_text, options, correct_option_index, points, created_at
	          FROM mcq_questions WHERE contest_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, contestID)
	if err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.ListByContestID query: %w", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var q model.Question
		var options []byte
		if err := rows.Scan(&q.ID, &q.ContestID, &q.QuestionText, &options, &q.CorrectOptionIndex, &q.Points, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.ListByContestID scan: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("pgQuestionRepository.ListByContestID unmarshal options: %w", err)
		}
		questions = append(questions, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgQuestionRepository.ListByContestID rows.Err: %w", err)
	}
	return questions, nil
}
