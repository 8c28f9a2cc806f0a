package model

type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	TotalPoints int    `json:"totalPoints"`
}
