package postgres

import (
	"context"
	"fmt"

	"github.com/dashkit/backend/internal/rss"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type FeedRepository struct {
	db DB
}

func NewFeedRepository(db DB) *FeedRepository {
	return &FeedRepository{db: db}
}

func (r *FeedRepository) ListURLsByUserID(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT feed_url
		FROM user_rss_feeds
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

func (r *FeedRepository) Add(ctx context.Context, feed *rss.Feed) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_rss_feeds (id, user_id, feed_url, created_at)
		VALUES ($1, $2, $3, now())
	`, feed.ID, feed.UserID, feed.FeedURL)
	return err
}

func (r *FeedRepository) Remove(ctx context.Context, userID, feedURL string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM user_rss_feeds
		WHERE user_id = $1 AND feed_url = $2
	`, userID, feedURL)
	return err
}
