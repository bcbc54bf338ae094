package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// HashIP returns a stable, salted 16-character digest of ip.
func HashIP(salt, ip string) string {
	sum := sha256.Sum256([]byte(ip + salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RecordVisit stores a page view. A zero CreatedAt means now.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordInteraction stores a hover or section event. A zero CreatedAt means
// now.
func (s *Store) RecordInteraction(ctx context.Context, in Interaction) error {
	if in.Kind != KindHover && in.Kind != KindSection {
		return fmt.Errorf("record interaction: unknown kind %q", in.Kind)
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO interactions (kind, target, hashed_ip, created_at) VALUES (?, ?, ?, ?)`,
		in.Kind, in.Target, in.HashedIP, in.CreatedAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

// RecentVisitors returns up to limit visits, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashed_ip, user_agent, path, created_at
		 FROM visitors ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var createdAt string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		v.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// CleanupBefore deletes visits and interactions recorded before cutoff and
// returns how many rows went.
func (s *Store) CleanupBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	c := cutoff.UTC().Format(timeFormat)
	var total int64
	for _, table := range []string{"visitors", "interactions"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE created_at < ?`, c)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	return total, nil
}
