package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// User is a registered or local player.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	AvatarURL    string
	CreatedAt    time.Time
}

const userColumns = "id, username, email, password_hash, avatar_url, created_at"

// CreateUser inserts a new user. The email is stored trimmed and lowercased.
// Returns ErrUserExists when the username or email is taken.
func (s *Store) CreateUser(ctx context.Context, username, email, passwordHash string) (*User, error) {
	u := &User{
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    now(),
	}

	var taken int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username = ? OR email = ?",
		u.Username, u.Email,
	).Scan(&taken)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot check user: %w", err)
	}
	if taken > 0 {
		return nil, ErrUserExists
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.Username, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if isConstraintErr(err) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot create user: %w", err)
	}
	if u.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return u, nil
}

// UserByEmail looks a user up by email, case-insensitively.
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	return s.userWhere(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

// UserByID looks a user up by ID.
func (s *Store) UserByID(ctx context.Context, id int64) (*User, error) {
	return s.userWhere(ctx, "id = ?", id)
}

// UserByName looks a user up by username.
func (s *Store) UserByName(ctx context.Context, username string) (*User, error) {
	return s.userWhere(ctx, "username = ?", username)
}

func (s *Store) userWhere(ctx context.Context, cond string, arg any) (*User, error) {
	var u User
	var createdAt any
	err := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE "+cond, arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.AvatarURL, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

// EnsurePlayer returns the user with the given name, creating a password-less
// local profile when it does not exist yet.
func (s *Store) EnsurePlayer(ctx context.Context, username string) (*User, error) {
	u, err := s.UserByName(ctx, username)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return s.CreateUser(ctx, username, username+"@local", "")
}
