package service

import (
	"context"
	"errors"
	"testing"

	"codearena/internal/common"
	"codearena/internal/domain/model"
)

func newContestFixture() (*ContestService, *fakeContestRepo) {
	contests := &fakeContestRepo{contests: map[int64]*model.Contest{}}
	questions := &fakeQuestionRepo{questions: map[int64]*model.Question{}}
	problems := &fakeProblemRepo{problems: map[int64]*model.Problem{}}
	return NewContestService(contests, questions, problems), contests
}

func TestCreateContest(t *testing.T) {
	svc, _ := newContestFixture()

	contest, err := svc.CreateContest(context.Background(), 1, model.RoleCreator, CreateContestRequest{
		Title:       "Winter Cup 2025",
		Description: "Annual contest",
		StartTime:   "2025-12-01T10:00:00Z",
		EndTime:     "2025-12-01T14:00:00Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contest.Slug != "winter-cup-2025" {
		t.Errorf("slug = %q, want winter-cup-2025", contest.Slug)
	}
	if contest.CreatorID != 1 {
		t.Errorf("creatorID = %d, want 1", contest.CreatorID)
	}
	if !contest.EndTime.After(contest.StartTime) {
		t.Error("end time must be after start time")
	}
}

func TestCreateContestContesteeForbidden(t *testing.T) {
	svc, _ := newContestFixture()

	_, err := svc.CreateContest(context.Background(), 2, model.RoleContestee, CreateContestRequest{
		Title:     "Nope",
		StartTime: "2025-12-01T10:00:00Z",
		EndTime:   "2025-12-01T14:00:00Z",
	})
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("got %v, want ErrForbidden", err)
	}
}

func TestCreateContestValidation(t *testing.T) {
	svc, _ := newContestFixture()

	cases := []struct {
		name string
		req  CreateContestRequest
	}{
		{"empty title", CreateContestRequest{StartTime: "2025-12-01T10:00:00Z", EndTime: "2025-12-01T14:00:00Z"}},
		{"bad start time", CreateContestRequest{Title: "t", StartTime: "yesterday", EndTime: "2025-12-01T14:00:00Z"}},
		{"bad end time", CreateContestRequest{Title: "t", StartTime: "2025-12-01T10:00:00Z", EndTime: "later"}},
		{"end before start", CreateContestRequest{Title: "t", StartTime: "2025-12-01T14:00:00Z", EndTime: "2025-12-01T10:00:00Z"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateContest(context.Background(), 1, model.RoleCreator, tc.req); !errors.Is(err, common.ErrInvalidRequest) {
				t.Errorf("got %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestAddQuestionOwnershipAndBounds(t *testing.T) {
	svc, contests := newContestFixture()
	contests.contests[10] = &model.Contest{ID: 10, CreatorID: 1}

	valid := AddQuestionRequest{
		QuestionText:       "2+2?",
		Options:            []string{"3", "4"},
		CorrectOptionIndex: intPtr(1),
		Points:             intPtr(5),
	}

	if _, err := svc.AddQuestion(context.Background(), 2, 10, valid); !errors.Is(err, common.ErrForbidden) {
		t.Errorf("non-owner: got %v, want ErrForbidden", err)
	}
	if _, err := svc.AddQuestion(context.Background(), 1, 99, valid); !errors.Is(err, common.ErrContestNotFound) {
		t.Errorf("missing contest: got %v, want ErrContestNotFound", err)
	}

	outOfBounds := valid
	outOfBounds.CorrectOptionIndex = intPtr(2)
	if _, err := svc.AddQuestion(context.Background(), 1, 10, outOfBounds); !errors.Is(err, common.ErrInvalidRequest) {
		t.Errorf("index out of bounds: got %v, want ErrInvalidRequest", err)
	}

	question, err := svc.AddQuestion(context.Background(), 1, 10, valid)
	if err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}
	if question.ID == 0 || question.Points != 5 {
		t.Errorf("unexpected question: %+v", question)
	}
}

func TestGetContestDetail(t *testing.T) {
	svc, contests := newContestFixture()
	contests.contests[10] = &model.Contest{ID: 10, Title: "Open", CreatorID: 1}

	q := AddQuestionRequest{
		QuestionText:       "q",
		Options:            []string{"a", "b"},
		CorrectOptionIndex: intPtr(0),
		Points:             intPtr(5),
	}
	if _, err := svc.AddQuestion(context.Background(), 1, 10, q); err != nil {
		t.Fatalf("add question: %v", err)
	}

	detail, err := svc.GetContest(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.MCQs) != 1 {
		t.Errorf("got %d mcqs, want 1", len(detail.MCQs))
	}
	if detail.DSAProblems == nil {
		t.Error("dsaProblems must be a non-nil slice so it serializes as []")
	}
}
