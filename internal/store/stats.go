package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("store: not found")

const (
	recentVisitorsLimit = 50
	topTargetsLimit     = 10
)

// Stats summarizes the data as of now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(timeFormat)
	weekAgo := now.Add(-7 * 24 * time.Hour).Format(timeFormat)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{today}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{weekAgo}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.UndeliveredMessages, `SELECT COUNT(*) FROM messages WHERE delivered = 0`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopProjects, err = s.topTargets(ctx, KindHover); err != nil {
		return nil, err
	}
	if stats.SectionViews, err = s.topTargets(ctx, KindSection); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, recentVisitorsLimit); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topTargets(ctx context.Context, kind string) ([]TargetCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT target, COUNT(*) AS n FROM interactions
		 WHERE kind = ? GROUP BY target ORDER BY n DESC, target ASC LIMIT ?`,
		kind, topTargetsLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("top %s targets: %w", kind, err)
	}
	defer rows.Close()

	var out []TargetCount
	for rows.Next() {
		var tc TargetCount
		if err := rows.Scan(&tc.Target, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan %s target: %w", kind, err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
