package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifeed/verifeed/internal/server/models"
)

func newTestManager(t *testing.T) *SQLiteManager {
	t.Helper()
	m, err := NewSQLiteManager(":memory:", Tables{
		Identities: "registrations",
		Quarantine: "fake_registrations",
		Posts:      "posts",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func boolPtr(b bool) *bool { return &b }

func TestSQLiteIdentities_PutListFind(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	a := &models.Identity{ID: "i1", Username: "ann", Email: "ann@example.com", Password: "pw", ProfileImageURL: "http://img/1", Timestamp: "2024-01-01T00:00:00Z"}
	b := &models.Identity{ID: "i2", Username: "bob", Email: "bob@example.com", Password: "pw2", Timestamp: "2024-01-02T00:00:00Z"}

	require.NoError(t, m.Identities().Put(ctx, a))
	require.NoError(t, m.Identities().Put(ctx, b))

	all, err := m.Identities().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := m.Identities().FindByUsername(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a, found[0])

	none, err := m.Identities().FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteIdentities_PutIsUpsert(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Identities().Put(ctx, &models.Identity{ID: "i1", Username: "ann"}))
	require.NoError(t, m.Identities().Put(ctx, &models.Identity{ID: "i1", Username: "ann2"}))

	all, err := m.Identities().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ann2", all[0].Username)
}

func TestSQLiteQuarantine_PutList(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	q := &models.QuarantinedAttempt{ID: "q1", Username: "mallory", Email: "m@example.com", Password: "pw", Timestamp: "2024-01-01T00:00:00Z"}
	require.NoError(t, m.Quarantine().Put(ctx, q))

	all, err := m.Quarantine().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, q, all[0])
}

func TestSQLitePosts_StatusRoundTrip(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Posts().Put(ctx, &models.Post{ID: "p1", IdentityID: "u1", Content: "real", Status: boolPtr(true), Timestamp: "2024-01-01T00:00:00Z"}))
	require.NoError(t, m.Posts().Put(ctx, &models.Post{ID: "p2", IdentityID: "u1", Content: "fake", Status: boolPtr(false), Timestamp: "2024-01-02T00:00:00Z"}))
	require.NoError(t, m.Posts().Put(ctx, &models.Post{ID: "p3", IdentityID: "u2", Content: "none", Timestamp: "2024-01-03T00:00:00Z"}))

	all, err := m.Posts().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	byID := map[string]*models.Post{}
	for _, p := range all {
		byID[p.ID] = p
	}
	require.NotNil(t, byID["p1"].Status)
	assert.True(t, *byID["p1"].Status)
	require.NotNil(t, byID["p2"].Status)
	assert.False(t, *byID["p2"].Status)
	assert.Nil(t, byID["p3"].Status, "missing status must stay NULL")
}

func TestSQLitePosts_ListByIdentity(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Posts().Put(ctx, &models.Post{ID: "p1", IdentityID: "u1"}))
	require.NoError(t, m.Posts().Put(ctx, &models.Post{ID: "p2", IdentityID: "u2"}))
	require.NoError(t, m.Posts().Put(ctx, &models.Post{ID: "p3", IdentityID: "u1"}))

	mine, err := m.Posts().ListByIdentity(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	empty, err := m.Posts().ListByIdentity(ctx, "u3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
