// Package host mounts one game engine at a time and mediates between it, the
// front end and the score collaborators.
//
// A Host is driven from a single goroutine (the Bubble Tea update loop); the
// engines call back into it synchronously from their frames and input
// handlers, so it holds no locks.
package host

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/RohitDatta06/gamehub/internal/engine"
	"github.com/RohitDatta06/gamehub/internal/registry"
	"github.com/RohitDatta06/gamehub/internal/storage"
)

var (
	// ErrNoSession is returned by Submit when no player is signed in.
	ErrNoSession = errors.New("host: no player session")
	// ErrNotOver is returned by Submit while the game is still running.
	ErrNotOver = errors.New("host: game is not over")
	// ErrNoGame is returned when an operation needs a mounted game.
	ErrNoGame = errors.New("host: no game mounted")
)

// EnvFactory builds the environment for a newly mounted engine. onScore must
// be installed as the environment's score callback.
type EnvFactory func(onScore engine.ScoreFunc) engine.Env

// Host owns at most one active engine.
type Host struct {
	newEnv    EnvFactory
	submitter ScoreSubmitter
	board     LeaderboardReader
	player    string
	logger    *log.Logger
	clock     func() time.Time

	id    string
	eng   engine.Engine
	gen   int
	score int
	over  bool

	notice Notice
}

// Option configures a Host.
type Option func(*Host)

// WithSubmitter sets where finished scores are sent.
func WithSubmitter(s ScoreSubmitter) Option {
	return func(h *Host) { h.submitter = s }
}

// WithLeaderboard sets where standings are read from.
func WithLeaderboard(r LeaderboardReader) Option {
	return func(h *Host) { h.board = r }
}

// WithPlayer sets the player session name.
func WithPlayer(name string) Option {
	return func(h *Host) { h.player = name }
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// WithClock replaces time.Now for notice expiry.
func WithClock(clock func() time.Time) Option {
	return func(h *Host) { h.clock = clock }
}

// New creates a host that builds engine environments with newEnv.
func New(newEnv EnvFactory, opts ...Option) *Host {
	h := &Host{
		newEnv: newEnv,
		logger: log.Default(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mount stops the current engine, if any, and starts the game registered
// under id.
func (h *Host) Mount(id string) error {
	h.Unmount()

	h.gen++
	gen := h.gen
	env := h.newEnv(func(score int, over bool) { h.onScore(gen, score, over) })

	eng, err := registry.Create(id, env)
	if err != nil {
		return fmt.Errorf("host: mount: %w", err)
	}
	h.id = id
	h.eng = eng
	h.score = 0
	h.over = false
	h.notice = Notice{}

	h.logger.Debug("mounting game", "game", id)
	eng.Start()
	return nil
}

func (h *Host) onScore(gen, score int, over bool) {
	if gen != h.gen {
		return
	}
	h.score = score
	if over || (h.eng != nil && h.eng.IsGameOver()) {
		if !h.over {
			h.logger.Debug("game over", "game", h.id, "score", score)
		}
		h.over = true
	}
}

// Restart resets the mounted engine.
func (h *Host) Restart() {
	if h.eng == nil {
		return
	}
	h.eng.Reset()
	h.over = false
	h.score = h.eng.Score()
}

// Unmount stops and discards the mounted engine.
func (h *Host) Unmount() {
	if h.eng == nil {
		return
	}
	h.eng.Stop()
	h.logger.Debug("stopped game", "game", h.id)
	h.gen++
	h.eng = nil
	h.id = ""
	h.score = 0
	h.over = false
}

// Redraw asks the mounted engine to repaint, when it supports that.
func (h *Host) Redraw() {
	if r, ok := h.eng.(engine.Redrawer); ok {
		r.Redraw()
	}
}

// GameID returns the mounted game's identifier, or "" when nothing is mounted.
func (h *Host) GameID() string { return h.id }

// Mounted reports whether an engine is active.
func (h *Host) Mounted() bool { return h.eng != nil }

// Score returns the last reported score.
func (h *Host) Score() int { return h.score }

// Over reports whether the mounted game has ended.
func (h *Host) Over() bool { return h.over }

// Player returns the session's player name.
func (h *Host) Player() string { return h.player }

// SetPlayer changes the player session. An empty name signs out.
func (h *Host) SetPlayer(name string) { h.player = name }

// CanSubmit reports whether Submit would be attempted.
func (h *Host) CanSubmit() bool {
	return h.over && h.player != "" && h.submitter != nil
}

// Submit sends the final score of the mounted game. The outcome is also
// recorded as a notice.
func (h *Host) Submit(ctx context.Context) (Receipt, error) {
	if h.player == "" || h.submitter == nil {
		return Receipt{}, h.fail(ErrNoSession)
	}
	if h.eng == nil {
		return Receipt{}, h.fail(ErrNoGame)
	}
	if !h.over {
		return Receipt{}, h.fail(ErrNotOver)
	}

	receipt, err := h.submitter.SubmitScore(ctx, h.id, h.score)
	if err != nil {
		h.logger.Warn("score submit failed", "game", h.id, "player", h.player, "err", err)
		return Receipt{}, h.fail(fmt.Errorf("host: submit: %w", err))
	}

	h.logger.Info("score submitted", "game", h.id, "player", h.player, "score", receipt.Value)
	msg := fmt.Sprintf("Score %d submitted", receipt.Value)
	if receipt.Rank > 0 {
		msg = fmt.Sprintf("Score %d submitted, rank #%d", receipt.Value, receipt.Rank)
	}
	h.notify(msg, false)
	return receipt, nil
}

// Leaderboard reads the mounted game's standings. limit is clamped to
// 1..100; zero or less selects 10.
func (h *Host) Leaderboard(ctx context.Context, limit int) ([]Standing, error) {
	if h.eng == nil {
		return nil, ErrNoGame
	}
	if h.board == nil {
		return nil, ErrNoSession
	}
	standings, err := h.board.Leaderboard(ctx, h.id, storage.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("host: leaderboard: %w", err)
	}
	return standings, nil
}

// Notice returns the current notice; ok is false when none is active.
func (h *Host) Notice() (Notice, bool) {
	if !h.notice.Active(h.clock()) {
		return Notice{}, false
	}
	return h.notice, true
}

func (h *Host) fail(err error) error {
	h.notify(err.Error(), true)
	return err
}

func (h *Host) notify(text string, isErr bool) {
	h.notice = Notice{Text: text, Err: isErr, Expires: h.clock().Add(NoticeTTL)}
}
