package storage

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultLimit is the leaderboard size used when none is requested.
	DefaultLimit = 10
	// MaxLimit caps any leaderboard request.
	MaxLimit = 100
)

// Score is a single recorded result.
type Score struct {
	ID        int64
	UserID    int64
	GameSlug  string
	Value     int
	CreatedAt time.Time
}

// Entry is a leaderboard row joined with the player's name.
type Entry struct {
	Rank      int
	ScoreID   int64
	UserID    int64
	Username  string
	Value     int
	CreatedAt time.Time
}

// GameStat aggregates one player's results for a game.
type GameStat struct {
	GameSlug   string
	BestScore  int
	TotalPlays int
}

// ClampLimit maps a requested limit onto (0, MaxLimit]. Non-positive values
// select DefaultLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// SaveScore records a result and returns it with its assigned ID.
func (s *Store) SaveScore(ctx context.Context, userID int64, slug string, value int) (*Score, error) {
	if value < 0 {
		return nil, ErrInvalidScore
	}
	sc := &Score{UserID: userID, GameSlug: slug, Value: value, CreatedAt: now()}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO scores (user_id, game_slug, value, created_at) VALUES (?, ?, ?, ?)",
		userID, slug, value, sc.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot insert score: %w", err)
	}
	if sc.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return sc, nil
}

// Leaderboard returns the best results for a game, highest first. Ties keep
// insertion order.
func (s *Store) Leaderboard(ctx context.Context, slug string, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.user_id, u.username, s.value, s.created_at
		FROM scores s JOIN users u ON u.id = s.user_id
		WHERE s.game_slug = ?
		ORDER BY s.value DESC, s.id ASC
		LIMIT ?`,
		slug, ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ScoreID, &e.UserID, &e.Username, &e.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Rank = len(entries) + 1
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Rank returns the 1-based position a score holds on its game's leaderboard.
func (s *Store) Rank(ctx context.Context, scoreID int64) (int, error) {
	var rank int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) + 1 FROM scores o, scores s
		WHERE s.id = ? AND o.game_slug = s.game_slug
		  AND (o.value > s.value OR (o.value = s.value AND o.id < s.id))`,
		scoreID,
	).Scan(&rank)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query rank: %w", err)
	}
	return rank, nil
}

// UserScores returns a player's best results for one game.
func (s *Store) UserScores(ctx context.Context, userID int64, slug string, limit int) ([]Score, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, game_slug, value, created_at
		FROM scores
		WHERE user_id = ? AND game_slug = ?
		ORDER BY value DESC, id ASC
		LIMIT ?`,
		userID, slug, ClampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var sc Score
		var createdAt any
		if err := rows.Scan(&sc.ID, &sc.UserID, &sc.GameSlug, &sc.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sc.CreatedAt = parseTime(createdAt)
		scores = append(scores, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return scores, nil
}

// UserStats groups a player's results by game, sorted by slug.
func (s *Store) UserStats(ctx context.Context, userID int64) ([]GameStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT game_slug, MAX(value), COUNT(*)
		FROM scores
		WHERE user_id = ?
		GROUP BY game_slug
		ORDER BY game_slug`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []GameStat
	for rows.Next() {
		var st GameStat
		if err := rows.Scan(&st.GameSlug, &st.BestScore, &st.TotalPlays); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearScores removes the results of one game, or every result when slug is
// empty.
func (s *Store) ClearScores(ctx context.Context, slug string) error {
	var err error
	if slug == "" {
		_, err = s.db.ExecContext(ctx, "DELETE FROM scores")
	} else {
		_, err = s.db.ExecContext(ctx, "DELETE FROM scores WHERE game_slug = ?", slug)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
