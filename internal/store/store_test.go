package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopvision/internal/appearance"
)

// testStore connects to the database named by TEST_DATABASE_URL and hands
// back a store over a fresh schema. Tests are skipped when no database is
// available.
func testStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	s, err := New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Reset(ctx))
	require.NoError(t, initSchema(ctx, s.conn))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = s.Reset(ctx)
		s.Close(ctx)
	})
	return s
}

func TestEnsurePlayerAndListUnanalyzed(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsurePlayer(ctx, Player{ID: "201939", Name: "Stephen Curry", PhotoURL: "https://cdn/201939.png"}))
	require.NoError(t, s.EnsurePlayer(ctx, Player{ID: "2544", Name: "LeBron James", PhotoURL: "https://cdn/2544.png"}))
	require.NoError(t, s.EnsurePlayer(ctx, Player{ID: "1628369", Name: "Jayson Tatum"}), "no photo URL")

	players, err := s.ListUnanalyzed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, players, 2, "players without a photo are not backfill work")
	assert.Equal(t, "201939", players[0].ID)
	assert.Equal(t, "2544", players[1].ID)

	limited, err := s.ListUnanalyzed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "201939", limited[0].ID)

	// Re-sync updates the roster fields without duplicating the row.
	require.NoError(t, s.EnsurePlayer(ctx, Player{ID: "201939", Name: "Stephen Curry", PhotoURL: "https://cdn/v2/201939.png"}))
	players, err = s.ListUnanalyzed(ctx, 0)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "https://cdn/v2/201939.png", players[0].PhotoURL)
}

func TestUpsertAndGetAppearance(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, ok, err := s.GetAppearance(ctx, "201939")
	require.NoError(t, err)
	assert.False(t, ok, "unknown player has no appearance")

	require.NoError(t, s.EnsurePlayer(ctx, Player{ID: "201939", Name: "Stephen Curry", PhotoURL: "https://cdn/201939.png"}))

	_, ok, err = s.GetAppearance(ctx, "201939")
	require.NoError(t, err)
	assert.False(t, ok, "registered but unanalyzed player has no appearance")

	want := appearance.Result{SkinTone: 4, Hair: 23, FacialHair: 8, Accessory: 0}
	require.NoError(t, s.UpsertAppearance(ctx, "201939", want))

	got, ok, err := s.GetAppearance(ctx, "201939")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got.Result)
	assert.WithinDuration(t, time.Now(), got.AnalyzedAt, time.Minute)

	// Analyzed players drop out of the backfill queue.
	players, err := s.ListUnanalyzed(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, players)

	// A roster re-sync must not clear the stored appearance.
	require.NoError(t, s.EnsurePlayer(ctx, Player{ID: "201939", Name: "Stephen Curry", PhotoURL: "https://cdn/v3/201939.png"}))
	got, ok, err = s.GetAppearance(ctx, "201939")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got.Result)
}

func TestUpsertAppearanceCreatesRow(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	want := appearance.Result{SkinTone: 9, Hair: 74, FacialHair: 20, Accessory: 3}
	require.NoError(t, s.UpsertAppearance(ctx, "1629029", want))

	got, ok, err := s.GetAppearance(ctx, "1629029")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got.Result)

	// Overwrite replaces the attributes in place.
	want.Hair = 75
	require.NoError(t, s.UpsertAppearance(ctx, "1629029", want))
	got, _, err = s.GetAppearance(ctx, "1629029")
	require.NoError(t, err)
	assert.Equal(t, 75, got.Hair)
}
