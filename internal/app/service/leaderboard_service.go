package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"codearena/internal/domain/model"
	"codearena/internal/domain/repository"
)

// LeaderboardService computes contest standings and caches them briefly in
// redis. The cache is best effort: a redis failure falls through to the
// database instead of failing the request.
type LeaderboardService struct {
	contestRepo    repository.ContestRepository
	submissionRepo repository.SubmissionRepository
	rdb            *redis.Client
	cacheTTL       time.Duration
}

func NewLeaderboardService(
	contestRepo repository.ContestRepository,
	submissionRepo repository.SubmissionRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *LeaderboardService {
	return &LeaderboardService{
		contestRepo:    contestRepo,
		submissionRepo: submissionRepo,
		rdb:            rdb,
		cacheTTL:       cacheTTL,
	}
}

func leaderboardCacheKey(contestID int64) string {
	return fmt.Sprintf("leaderboard:%d", contestID)
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, contestID int64) ([]model.LeaderboardEntry, error) {
	if _, err := s.contestRepo.FindByID(ctx, contestID); err != nil {
		return nil, err
	}

	key := leaderboardCacheKey(contestID)
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var entries []model.LeaderboardEntry
			if jsonErr := json.Unmarshal([]byte(cached), &entries); jsonErr == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			log.Printf("leaderboard cache get failed: %v", err)
		}
	}

	rows, err := s.submissionRepo.GetLeaderboard(ctx, contestID)
	if err != nil {
		return nil, err
	}
	entries := rankEntries(rows)

	if s.rdb != nil {
		if payload, jsonErr := json.Marshal(entries); jsonErr == nil {
			if err := s.rdb.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				log.Printf("leaderboard cache set failed: %v", err)
			}
		}
	}
	return entries, nil
}

// rankEntries assigns competition ranking: ties share a rank and the next
// distinct score skips the tied positions (1, 1, 3).
func rankEntries(rows []repository.LeaderboardRow) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		rank := i + 1
		if i > 0 && row.TotalPoints == rows[i-1].TotalPoints {
			rank = entries[i-1].Rank
		}
		entries = append(entries, model.LeaderboardEntry{
			Rank:        rank,
			UserID:      row.UserID,
			Name:        row.Name,
			TotalPoints: row.TotalPoints,
		})
	}
	return entries
}
