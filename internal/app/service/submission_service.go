package service

import (
	"context"
	"strings"
	"time"

	"codearena/internal/common"
	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
	"codearena/internal/judge"
)

type SubmitMCQRequest struct {
	SelectedOptionIndex *int `json:"selectedOptionIndex"`
}

type SubmitDSARequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// SubmissionService orchestrates grading: it gates every submission on the
// contest window and the submitter's role, hands DSA code to the judge and
// persists the outcome. A judge infrastructure fault aborts the submission
// with nothing persisted.
type SubmissionService struct {
	contestRepo    repository.ContestRepository
	questionRepo   repository.QuestionRepository
	problemRepo    repository.ProblemRepository
	submissionRepo repository.SubmissionRepository
	judge          *judge.Judge

	now func() time.Time
}

func NewSubmissionService(
	contestRepo repository.ContestRepository,
	questionRepo repository.QuestionRepository,
	problemRepo repository.ProblemRepository,
	submissionRepo repository.SubmissionRepository,
	j *judge.Judge,
) *SubmissionService {
	return &SubmissionService{
		contestRepo:    contestRepo,
		questionRepo:   questionRepo,
		problemRepo:    problemRepo,
		submissionRepo: submissionRepo,
		judge:          j,
		now:            time.Now,
	}
}

// SubmitMCQ grades an answer full-or-zero. The window check runs before the
// duplicate check, so a repeat submission to a closed contest reports
// CONTEST_NOT_ACTIVE rather than ALREADY_SUBMITTED.
func (s *SubmissionService) SubmitMCQ(ctx context.Context, userID, contestID, questionID int64, req SubmitMCQRequest) (*model.MCQResult, error) {
	if req.SelectedOptionIndex == nil || *req.SelectedOptionIndex < 0 {
		return nil, common.ErrInvalidRequest
	}
	selected := *req.SelectedOptionIndex

	contest, err := s.contestRepo.FindByID(ctx, contestID)
	if err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.ContestID != contestID {
		return nil, common.ErrQuestionNotFound
	}

	if !contest.IsActiveAt(s.now()) {
		return nil, common.ErrContestNotActive
	}
	if contest.CreatorID == userID {
		return nil, common.ErrForbidden
	}

	// An index past the options simply never matches.
	isCorrect := selected == question.CorrectOptionIndex
	points := 0
	if isCorrect {
		points = question.Points
	}

	submission := &model.MCQSubmission{
		UserID:              userID,
		QuestionID:          questionID,
		ContestID:           contestID,
		SelectedOptionIndex: selected,
		IsCorrect:           isCorrect,
		PointsEarned:        points,
	}
	if err := s.submissionRepo.CreateMCQSubmission(ctx, submission); err != nil {
		return nil, err
	}

	return &model.MCQResult{
		IsCorrect:    isCorrect,
		PointsEarned: points,
	}, nil
}

// SubmitDSA runs the submitted code through the judge against every test case
// of the problem, hidden ones included, and records the attempt. Resubmission
// is unlimited; each attempt is a new row.
func (s *SubmissionService) SubmitDSA(ctx context.Context, userID, problemID int64, req SubmitDSARequest) (*model.DSAResult, error) {
	if strings.TrimSpace(req.Code) == "" || req.Language == "" {
		return nil, common.ErrInvalidRequest
	}

	problem, err := s.problemRepo.FindByID(ctx, problemID)
	if err != nil {
		return nil, err
	}
	contest, err := s.contestRepo.FindByID(ctx, problem.ContestID)
	if err != nil {
		return nil, err
	}
	if !contest.IsActiveAt(s.now()) {
		return nil, common.ErrContestNotActive
	}
	if contest.CreatorID == userID {
		return nil, common.ErrForbidden
	}

	cases := make([]judge.TestCase, len(problem.TestCases))
	for i, tc := range problem.TestCases {
		cases[i] = judge.TestCase{Input: tc.Input, ExpectedOutput: tc.ExpectedOutput}
	}
	limits := judge.Limits{TimeMs: problem.TimeLimitMs, MemoryMB: problem.MemoryLimitMB}

	verdict, err := s.judge.Evaluate(ctx, cases, req.Code, req.Language, limits, problem.Points)
	if err != nil {
		return nil, common.Errorf("%w: judge evaluate: %v", common.ErrInternalServer, err)
	}

	submission := &model.DSASubmission{
		UserID:          userID,
		ProblemID:       problemID,
		Code:            req.Code,
		Language:        req.Language,
		Status:          string(verdict.Status),
		PointsEarned:    verdict.PointsEarned,
		TestCasesPassed: verdict.TestCasesPassed,
		TotalTestCases:  verdict.TotalTestCases,
	}
	if err := s.submissionRepo.CreateDSASubmission(ctx, submission); err != nil {
		return nil, err
	}

	return &model.DSAResult{
		Status:          submission.Status,
		PointsEarned:    submission.PointsEarned,
		TestCasesPassed: submission.TestCasesPassed,
		TotalTestCases:  submission.TotalTestCases,
	}, nil
}
