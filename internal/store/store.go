// Package store persists player rows and their analyzed appearance in
// PostgreSQL.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"hoopvision/internal/appearance"
)

// Store manages the PostgreSQL connection and player appearance rows.
type Store struct {
	conn *pgx.Conn
}

// Player is the roster-facing slice of a row: identity and where to fetch
// its headshot from.
type Player struct {
	ID       string
	Name     string
	PhotoURL string
}

// Appearance is a stored analysis result and when it was written.
type Appearance struct {
	appearance.Result
	AnalyzedAt time.Time
}

// New connects to the database and ensures the schema is initialized.
func New(ctx context.Context, connString string) (*Store, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := initSchema(ctx, conn); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("initialize database schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// initSchema creates the players table if it doesn't exist (auto-migration).
// Appearance columns stay NULL until an analysis is written, so analyzed_at
// doubles as the backfill cursor.
func initSchema(ctx context.Context, conn *pgx.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS players (
			player_id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			photo_url TEXT NOT NULL DEFAULT '',
			skin_tone INT,
			hair INT,
			facial_hair INT,
			accessory INT,
			analyzed_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS players_unanalyzed_idx ON players (player_id) WHERE analyzed_at IS NULL;
	`
	_, err := conn.Exec(ctx, query)
	return err
}

// Close terminates the database connection.
func (s *Store) Close(ctx context.Context) {
	s.conn.Close(ctx)
}

// EnsurePlayer registers a roster row, updating name and photo URL on
// re-sync. A previously analyzed appearance survives roster updates.
func (s *Store) EnsurePlayer(ctx context.Context, p Player) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO players (player_id, name, photo_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE SET name = EXCLUDED.name, photo_url = EXCLUDED.photo_url
	`, p.ID, p.Name, p.PhotoURL)
	return err
}

// UpsertAppearance writes the analyzed appearance for a player and stamps
// analyzed_at, creating the row if the roster sync never saw the player.
func (s *Store) UpsertAppearance(ctx context.Context, playerID string, r appearance.Result) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO players (player_id, skin_tone, hair, facial_hair, accessory, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			skin_tone = EXCLUDED.skin_tone,
			hair = EXCLUDED.hair,
			facial_hair = EXCLUDED.facial_hair,
			accessory = EXCLUDED.accessory,
			analyzed_at = NOW()
	`, playerID, r.SkinTone, r.Hair, r.FacialHair, r.Accessory)
	return err
}

// GetAppearance fetches a player's stored appearance. The second return is
// false when the player is unknown or not yet analyzed.
func (s *Store) GetAppearance(ctx context.Context, playerID string) (Appearance, bool, error) {
	var a Appearance
	err := s.conn.QueryRow(ctx, `
		SELECT skin_tone, hair, facial_hair, accessory, analyzed_at
		FROM players
		WHERE player_id = $1 AND analyzed_at IS NOT NULL
	`, playerID).Scan(&a.SkinTone, &a.Hair, &a.FacialHair, &a.Accessory, &a.AnalyzedAt)
	if err == pgx.ErrNoRows {
		return Appearance{}, false, nil
	}
	if err != nil {
		return Appearance{}, false, err
	}
	return a, true, nil
}

// ListUnanalyzed returns players that have a photo URL but no stored
// appearance yet, ordered by id for a stable backfill sequence. A limit
// of zero or less means no limit.
func (s *Store) ListUnanalyzed(ctx context.Context, limit int) ([]Player, error) {
	query := `
		SELECT player_id, name, photo_url
		FROM players
		WHERE photo_url <> '' AND analyzed_at IS NULL
		ORDER BY player_id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.PhotoURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Reset drops the players table to clear the database state. Useful for
// development to force a schema refresh without migrations.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `DROP TABLE IF EXISTS players CASCADE`)
	return err
}
