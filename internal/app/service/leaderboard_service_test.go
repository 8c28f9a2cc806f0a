package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

func newLeaderboardFixture(t *testing.T, rows []repository.LeaderboardRow) (*LeaderboardService, *fakeSubmissionRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	contests := &fakeContestRepo{contests: map[int64]*model.Contest{
		10: {ID: 10, Title: "Summer Open", CreatorID: 1},
	}}
	submissions := &fakeSubmissionRepo{leaderboardRows: rows}
	return NewLeaderboardService(contests, submissions, rdb, time.Minute), submissions
}

func TestLeaderboardCompetitionRanking(t *testing.T) {
	rows := []repository.LeaderboardRow{
		{UserID: 2, Name: "ada", TotalPoints: 150},
		{UserID: 3, Name: "grace", TotalPoints: 150},
		{UserID: 4, Name: "linus", TotalPoints: 90},
		{UserID: 5, Name: "rob", TotalPoints: 90},
		{UserID: 6, Name: "ken", TotalPoints: 10},
	}
	svc, _ := newLeaderboardFixture(t, rows)

	entries, err := svc.GetLeaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantRanks := []int{1, 1, 3, 3, 5}
	if len(entries) != len(wantRanks) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantRanks))
	}
	for i, want := range wantRanks {
		if entries[i].Rank != want {
			t.Errorf("entry %d (%s): rank = %d, want %d", i, entries[i].Name, entries[i].Rank, want)
		}
	}
}

func TestLeaderboardServedFromCache(t *testing.T) {
	rows := []repository.LeaderboardRow{
		{UserID: 2, Name: "ada", TotalPoints: 42},
	}
	svc, repo := newLeaderboardFixture(t, rows)

	if _, err := svc.GetLeaderboard(context.Background(), 10); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	entries, err := svc.GetLeaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if repo.leaderboardHits != 1 {
		t.Errorf("database hit %d times, want 1 (second call cached)", repo.leaderboardHits)
	}
	if len(entries) != 1 || entries[0].Rank != 1 || entries[0].TotalPoints != 42 {
		t.Errorf("cached payload mismatch: %+v", entries)
	}
}

func TestLeaderboardUnknownContest(t *testing.T) {
	svc, _ := newLeaderboardFixture(t, nil)

	if _, err := svc.GetLeaderboard(context.Background(), 999); err == nil {
		t.Error("expected error for unknown contest")
	}
}

func TestLeaderboardEmptyContest(t *testing.T) {
	svc, _ := newLeaderboardFixture(t, nil)

	entries, err := svc.GetLeaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want empty", len(entries))
	}
}
