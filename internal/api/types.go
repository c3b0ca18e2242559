package api

import (
	"time"

	"github.com/RohitDatta06/gamehub/internal/storage"
)

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest exchanges credentials for tokens.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token for clients without cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SubmitScoreRequest records a finished game.
type SubmitScoreRequest struct {
	Value *int `json:"value" validate:"required,min=0"`
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User        UserDTO `json:"user"`
	AccessToken string  `json:"accessToken"`
}

// TokenResponse is returned by refresh.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// GameDTO is a catalog entry.
type GameDTO struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ScoreDTO is a stored result.
type ScoreDTO struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	GameSlug  string    `json:"gameSlug"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerDTO names the owner of a leaderboard entry.
type PlayerDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// EntryDTO is one leaderboard row.
type EntryDTO struct {
	ID        int64     `json:"id"`
	Rank      int       `json:"rank"`
	Value     int       `json:"value"`
	User      PlayerDTO `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatDTO aggregates a player's results for one game.
type StatDTO struct {
	GameSlug   string `json:"gameSlug"`
	BestScore  int    `json:"bestScore"`
	TotalPlays int    `json:"totalPlays"`
}

func toUser(u *storage.User) UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username, Email: u.Email, AvatarURL: u.AvatarURL, CreatedAt: u.CreatedAt}
}

func toGame(g storage.Game) GameDTO {
	return GameDTO{Slug: g.Slug, Title: g.Title, Description: g.Description, CreatedAt: g.CreatedAt}
}

func toScore(sc storage.Score) ScoreDTO {
	return ScoreDTO{ID: sc.ID, UserID: sc.UserID, GameSlug: sc.GameSlug, Value: sc.Value, CreatedAt: sc.CreatedAt}
}
