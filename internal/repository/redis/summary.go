package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jkclark/shutbox/internal/repository"
	"github.com/jkclark/shutbox/internal/stats"
)

// summaryTTL bounds how long a cached strategy summary is served before a
// fresh run is required.
const summaryTTL = 24 * time.Hour

const leaderboardKey = "shutbox:leaderboard"

func summaryKey(strategy string) string { return "shutbox:summary:" + strategy }

// SetSummary caches the latest summary for a strategy.
func (c *Client) SetSummary(ctx context.Context, strategy string, summary stats.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	return c.rdb.Set(ctx, summaryKey(strategy), data, summaryTTL).Err()
}

// GetSummary returns the cached summary for a strategy, or nil if absent.
func (c *Client) GetSummary(ctx context.Context, strategy string) (*stats.Summary, error) {
	data, err := c.rdb.Get(ctx, summaryKey(strategy)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}
	var summary stats.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}
	return &summary, nil
}

// UpdateLeaderboard records a strategy's latest mean score. The board is
// a sorted set keyed by mean, so lower (better) scores rank first.
func (c *Client) UpdateLeaderboard(ctx context.Context, strategy string, meanScore float64) error {
	return c.rdb.ZAdd(ctx, leaderboardKey, redis.Z{Score: meanScore, Member: strategy}).Err()
}

// Leaderboard returns all ranked strategies, best (lowest mean) first.
func (c *Client) Leaderboard(ctx context.Context) ([]repository.LeaderboardEntry, error) {
	zs, err := c.rdb.ZRangeWithScores(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("leaderboard range: %w", err)
	}
	entries := make([]repository.LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		name, _ := z.Member.(string)
		entries = append(entries, repository.LeaderboardEntry{Strategy: name, MeanScore: z.Score})
	}
	return entries, nil
}
