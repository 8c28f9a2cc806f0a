package service

import (
	"context"
	"strings"

	"github.com/gosimple/slug"

	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

type TestCaseInput struct {
	Input          *string `json:"input"`
	ExpectedOutput *string `json:"expectedOutput"`
	IsHidden       bool    `json:"isHidden"`
}

type CreateProblemRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Tags          []string        `json:"tags"`
	Points        *int            `json:"points"`
	TimeLimitMs   *int            `json:"timeLimit"`
	MemoryLimitMB *int            `json:"memoryLimit"`
	TestCases     []TestCaseInput `json:"testCases"`
}

type ProblemService struct {
	contestRepo repository.ContestRepository
	problemRepo repository.ProblemRepository
}

func NewProblemService(contestRepo repository.ContestRepository, problemRepo repository.ProblemRepository) *ProblemService {
	return &ProblemService{contestRepo: contestRepo, problemRepo: problemRepo}
}

// CreateProblem attaches an algorithmic problem, with its test cases, to a
// contest owned by the caller.
func (s *ProblemService) CreateProblem(ctx context.Context, userID int64, contestID int64, req CreateProblemRequest) (*model.Problem, error) {
	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.CreatorID != userID {
		return nil, common.ErrForbidden
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || len(req.TestCases) == 0 {
		return nil, common.ErrInvalidRequest
	}
	if req.Points == nil || *req.Points <= 0 {
		return nil, common.ErrInvalidRequest
	}
	if req.TimeLimitMs == nil || *req.TimeLimitMs <= 0 {
		return nil, common.ErrInvalidRequest
	}
	if req.MemoryLimitMB == nil || *req.MemoryLimitMB <= 0 {
		return nil, common.ErrInvalidRequest
	}

	cases := make([]model.TestCase, 0, len(req.TestCases))
	for _, tc := range req.TestCases {
		if tc.Input == nil || tc.ExpectedOutput == nil {
			return nil, common.ErrInvalidRequest
		}
		cases = append(cases, model.TestCase{
			Input:          *tc.Input,
			ExpectedOutput: *tc.ExpectedOutput,
			IsHidden:       tc.IsHidden,
		})
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	problem := &model.Problem{
		ContestID:     contestID,
		Title:         req.Title,
		Slug:          slug.Make(req.Title),
		Description:   req.Description,
		Tags:          tags,
		Points:        *req.Points,
		TimeLimitMs:   *req.TimeLimitMs,
		MemoryLimitMB: *req.MemoryLimitMB,
		TestCases:     cases,
	}
	if err := s.problemRepo.Create(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

// GetProblem returns the problem with only its non-hidden test cases, reduced
// to input and expected output.
func (s *ProblemService) GetProblem(ctx context.Context, problemID int64) (*model.ProblemDetail, error) {
	problem, err := s.problemRepo.FindByID(ctx, problemID)
	if err != nil {
		return nil, err
	}

	visible := []model.TestCaseView{}
	for _, tc := range problem.TestCases {
		if tc.IsHidden {
			continue
		}
		visible = append(visible, model.TestCaseView{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
	}
	return &model.ProblemDetail{
		Problem:          *problem,
		VisibleTestCases: visible,
	}, nil
}
