package rss

//go:generate mockgen -destination=../mocks/mock_feed_repository.go -package=mocks github.com/dashkit/backend/internal/rss FeedRepository

import (
	"context"
	"time"
)

type Feed struct {
	ID        string
	UserID    string
	FeedURL   string
	CreatedAt time.Time
}

// FeedRepository stores per-user feed URL lists. Pure pass-through storage,
// no policy.
type FeedRepository interface {
	ListURLsByUserID(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, feed *Feed) error
	Remove(ctx context.Context, userID, feedURL string) error
}
