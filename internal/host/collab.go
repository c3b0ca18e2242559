package host

import (
	"context"
	"time"

	"github.com/RohitDatta06/gamehub/internal/storage"
)

// Receipt acknowledges a stored score.
type Receipt struct {
	ID    int64
	Game  string
	Value int
	// Rank is the position on the game's leaderboard, 0 when unknown.
	Rank int
	At   time.Time
}

// Standing is one leaderboard row.
type Standing struct {
	Rank   int
	Player string
	Value  int
	At     time.Time
}

// ScoreSubmitter stores a finished game's score.
type ScoreSubmitter interface {
	SubmitScore(ctx context.Context, gameID string, value int) (Receipt, error)
}

// LeaderboardReader lists the best scores of a game.
type LeaderboardReader interface {
	Leaderboard(ctx context.Context, gameID string, limit int) ([]Standing, error)
}

// Local submits to and reads from a sqlite store on behalf of one player.
type Local struct {
	store  *storage.Store
	player string
}

// NewLocal binds a store to a player name. The player's profile is created on
// first submit.
func NewLocal(store *storage.Store, player string) *Local {
	return &Local{store: store, player: player}
}

// SubmitScore implements ScoreSubmitter.
func (l *Local) SubmitScore(ctx context.Context, gameID string, value int) (Receipt, error) {
	if l.player == "" {
		return Receipt{}, ErrNoSession
	}
	user, err := l.store.EnsurePlayer(ctx, l.player)
	if err != nil {
		return Receipt{}, err
	}
	sc, err := l.store.SaveScore(ctx, user.ID, gameID, value)
	if err != nil {
		return Receipt{}, err
	}
	rank, err := l.store.Rank(ctx, sc.ID)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{ID: sc.ID, Game: gameID, Value: sc.Value, Rank: rank, At: sc.CreatedAt}, nil
}

// Leaderboard implements LeaderboardReader.
func (l *Local) Leaderboard(ctx context.Context, gameID string, limit int) ([]Standing, error) {
	entries, err := l.store.Leaderboard(ctx, gameID, limit)
	if err != nil {
		return nil, err
	}
	standings := make([]Standing, len(entries))
	for i, e := range entries {
		standings[i] = Standing{Rank: e.Rank, Player: e.Username, Value: e.Value, At: e.CreatedAt}
	}
	return standings, nil
}
