package service

import (
	"context"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

type CreateContestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

type AddQuestionRequest struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectOptionIndex *int     `json:"correctOptionIndex"`
	Points             *int     `json:"points"`
}

type ContestService struct {
	contestRepo  repository.ContestRepository
	questionRepo repository.QuestionRepository
	problemRepo  repository.ProblemRepository
}

func NewContestService(
	contestRepo repository.ContestRepository,
	questionRepo repository.QuestionRepository,
	problemRepo repository.ProblemRepository,
) *ContestService {
	return &ContestService{
		contestRepo:  contestRepo,
		questionRepo: questionRepo,
		problemRepo:  problemRepo,
	}
}

func (s *ContestService) CreateContest(ctx context.Context, creatorID int64, role string, req CreateContestRequest) (*model.Contest, error) {
	if role != model.RoleCreator {
		return nil, common.ErrForbidden
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, common.ErrInvalidRequest
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, common.ErrInvalidRequest
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, common.ErrInvalidRequest
	}
	if !end.After(start) {
		return nil, common.ErrInvalidRequest
	}

	contest := &model.Contest{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		StartTime:   start.UTC().Truncate(time.Millisecond),
		EndTime:     end.UTC().Truncate(time.Millisecond),
		CreatorID:   creatorID,
	}
	if err := s.contestRepo.Create(ctx, contest); err != nil {
		return nil, err
	}
	return contest, nil
}

// GetContest returns the contest with both question sets attached. Correct
// answers and test cases are stripped by the models' serialization rules.
func (s *ContestService) GetContest(ctx context.Context, contestID int64) (*model.ContestDetail, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByContestID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	problems, err := s.problemRepo.ListByContestID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	return &model.ContestDetail{
		Contest:     *contest,
		MCQs:        questions,
		DSAProblems: problems,
	}, nil
}

// AddQuestion attaches a multiple-choice question to a contest owned by the
// caller. The correct option must index into the provided options.
func (s *ContestService) AddQuestion(ctx context.Context, userID int64, contestID int64, req AddQuestionRequest) (*model.Question, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.CreatorID != userID {
		return nil, common.ErrForbidden
	}

	req.QuestionText = strings.TrimSpace(req.QuestionText)
	if req.QuestionText == "" || len(req.Options) == 0 {
		return nil, common.ErrInvalidRequest
	}
	if req.CorrectOptionIndex == nil || req.Points == nil {
		return nil, common.ErrInvalidRequest
	}
	if *req.CorrectOptionIndex < 0 || *req.CorrectOptionIndex >= len(req.Options) {
		return nil, common.ErrInvalidRequest
	}
	if *req.Points <= 0 {
		return nil, common.ErrInvalidRequest
	}

	question := &model.Question{
		ContestID:          contestID,
		QuestionText:       req.QuestionText,
		Options:            req.Options,
		CorrectOptionIndex: *req.CorrectOptionIndex,
		Points:             *req.Points,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}
