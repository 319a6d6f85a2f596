package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	d, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestMigrateIdempotent(t *testing.T) {
	d := openTest(t)
	require.NoError(t, d.migrate())
}

func TestStatsCountsVisitsAndMessages(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaa", Path: "/hobbies", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bbb", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "ccc", Path: "/", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		require.NoError(t, d.RecordVisit(ctx, v))
	}

	id, err := d.RecordContact(ctx, ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "hi", CreatedAt: now})
	require.NoError(t, err)
	_, err = d.RecordContact(ctx, ContactMessage{Name: "Bob", Email: "bob@example.com", Message: "yo", CreatedAt: now})
	require.NoError(t, err)
	require.NoError(t, d.MarkRelayed(ctx, id))

	s, err := d.Stats(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 4, s.TotalVisitors)
	require.EqualValues(t, 3, s.UniqueVisitors)
	require.EqualValues(t, 2, s.VisitorsToday)
	require.EqualValues(t, 3, s.VisitorsThisWeek)
	require.EqualValues(t, 2, s.ContactMessages)
	require.EqualValues(t, 1, s.Unrelayed)
	require.Equal(t, PathCount{Path: "/", Visits: 3}, s.TopPaths[0])
	require.Len(t, s.RecentVisitors, 4)
	require.Equal(t, "/", s.RecentVisitors[0].Path)
	require.Len(t, s.RecentMessages, 2)
}

func TestCleanupVisits(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)
	now := time.Now()

	require.NoError(t, d.RecordVisit(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, d.RecordVisit(ctx, Visit{HashedIP: "new", Path: "/"}))

	n, err := d.CleanupVisits(ctx, now.AddDate(-1, 0, 0))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	s, err := d.Stats(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, s.TotalVisitors)
}
