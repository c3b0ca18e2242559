package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RohitDatta06/gamehub/internal/auth"
	"github.com/RohitDatta06/gamehub/internal/storage"
)

// RefreshCookie holds the refresh token for browser clients.
const RefreshCookie = "refreshToken"

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !s.decode(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	user, err := s.store.CreateUser(r.Context(), req.Username, req.Email, hash)
	if errors.Is(err, storage.ErrUserExists) {
		writeError(w, http.StatusBadRequest, CodeUserExists, "User already exists")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	s.issueSession(w, r, user, http.StatusCreated)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	user, err := s.store.UserByEmail(r.Context(), req.Email)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials")
		return
	}

	s.issueSession(w, r, user, http.StatusOK)
}

func (s *Server) issueSession(w http.ResponseWriter, r *http.Request, user *storage.User, status int) {
	access, refresh, err := s.issuer.Pair(user.ID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    refresh,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.issuer.RefreshTTL().Seconds()),
	})
	writeJSON(w, status, AuthResponse{User: toUser(user), AccessToken: access})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(RefreshCookie); err == nil {
		token = c.Value
	}
	if token == "" && r.ContentLength != 0 {
		var req RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		writeError(w, http.StatusUnauthorized, CodeNoRefreshToken, "No refresh token")
		return
	}

	userID, err := s.issuer.Verify(token, auth.Refresh)
	if err != nil {
		writeError(w, http.StatusUnauthorized, CodeInvalidRefreshToken, "Invalid refresh token")
		return
	}
	access, err := s.issuer.Issue(userID, auth.Access)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{AccessToken: access})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.UserByID(r.Context(), userID(r))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, CodeUserNotFound, "User not found")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]UserDTO{"user": toUser(user)})
}
