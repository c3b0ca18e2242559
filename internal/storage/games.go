package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Game is a catalog entry.
type Game struct {
	Slug        string
	Title       string
	Description string
	CreatedAt   time.Time
}

// SeedGames inserts catalog entries that are not present yet and returns how
// many rows were added.
func (s *Store) SeedGames(ctx context.Context, games []Game) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin seed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	added := 0
	for _, g := range games {
		res, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO games (slug, title, description, created_at) VALUES (?, ?, ?, ?)",
			g.Slug, g.Title, g.Description, now(),
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot seed game %s: %w", g.Slug, err)
		}
		n, _ := res.RowsAffected()
		added += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit seed: %w", err)
	}
	return added, nil
}

// Games lists the catalog sorted by slug.
func (s *Store) Games(ctx context.Context) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT slug, title, description, created_at FROM games ORDER BY slug",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []Game
	for rows.Next() {
		var g Game
		var createdAt any
		if err := rows.Scan(&g.Slug, &g.Title, &g.Description, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return games, nil
}

// Game returns one catalog entry or ErrNotFound.
func (s *Store) Game(ctx context.Context, slug string) (*Game, error) {
	var g Game
	var createdAt any
	err := s.db.QueryRowContext(ctx,
		"SELECT slug, title, description, created_at FROM games WHERE slug = ?", slug,
	).Scan(&g.Slug, &g.Title, &g.Description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}
	g.CreatedAt = parseTime(createdAt)
	return &g, nil
}
