package store

import (
	"context"
	"fmt"
	"time"
)

// PathCount is the number of visits to one path.
type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats is the admin summary.
type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	ContactMessages  int64            `json:"contact_messages"`
	Unrelayed        int64            `json:"unrelayed"`
	TopPaths         []PathCount      `json:"top_paths"`
	RecentVisitors   []Visit          `json:"recent_visitors"`
	RecentMessages   []ContactMessage `json:"recent_messages"`
	LiveSessions     int              `json:"live_sessions"`
}

// Stats computes the summary as of now.
func (d *DB) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	s := &Stats{}
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	week := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&s.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&s.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&s.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{day}},
		{&s.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{week}},
		{&s.ContactMessages, `SELECT COUNT(*) FROM contact_messages`, nil},
		{&s.Unrelayed, `SELECT COUNT(*) FROM contact_messages WHERE relayed = 0`, nil},
	}
	for _, c := range counts {
		if err := d.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := d.QueryContext(ctx, `
		SELECT path, COUNT(*) AS visits
		FROM visitors
		GROUP BY path
		ORDER BY visits DESC, path ASC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("stats top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			continue
		}
		s.TopPaths = append(s.TopPaths, pc)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("stats top paths: %w", err)
	}

	vrows, err := d.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT 50`)
	if err != nil {
		return nil, fmt.Errorf("stats recent visitors: %w", err)
	}
	defer vrows.Close()
	for vrows.Next() {
		var v Visit
		if err := vrows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		s.RecentVisitors = append(s.RecentVisitors, v)
	}
	if err := vrows.Close(); err != nil {
		return nil, fmt.Errorf("stats recent visitors: %w", err)
	}

	mrows, err := d.QueryContext(ctx, `
		SELECT id, name, email, message, relayed, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT 20`)
	if err != nil {
		return nil, fmt.Errorf("stats recent messages: %w", err)
	}
	defer mrows.Close()
	for mrows.Next() {
		var m ContactMessage
		if err := mrows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Relayed, &m.CreatedAt); err != nil {
			continue
		}
		s.RecentMessages = append(s.RecentMessages, m)
	}

	return s, nil
}
