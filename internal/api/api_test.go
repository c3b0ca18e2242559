package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohitDatta06/gamehub/internal/auth"
	"github.com/RohitDatta06/gamehub/internal/config"
	"github.com/RohitDatta06/gamehub/internal/storage"
)

var testCatalog = []storage.Game{
	{Slug: "snake", Title: "Snake"},
	{Slug: "pong", Title: "Pong"},
}

type testAPI struct {
	t       *testing.T
	handler http.Handler
	store   *storage.Store
}

func newTestAPI(t *testing.T, mutate func(*config.APIConfig)) *testAPI {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultServer().API
	if mutate != nil {
		mutate(&cfg)
	}
	issuer, err := auth.NewIssuer("test-secret", cfg.AccessTTL, cfg.RefreshTTL)
	require.NoError(t, err)

	srv := NewServer(store, issuer, cfg, testCatalog, log.New(io.Discard))
	return &testAPI{t: t, handler: srv.Routes(), store: store}
}

func (a *testAPI) do(method, path string, body any, token string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	a.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) register(name string) (AuthResponse, *http.Cookie) {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Username: name, Email: name + "@example.com", Password: "secret1",
	}, "")
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp AuthResponse
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp, refreshCookie(rec)
}

func (a *testAPI) seed() {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/v1/games/seed", nil, "")
	require.Equal(a.t, http.StatusOK, rec.Code)
}

func refreshCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == RefreshCookie {
			return c
		}
	}
	return nil
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error.Code
}

func TestHealth(t *testing.T) {
	a := newTestAPI(t, nil)
	rec := a.do(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterAndMe(t *testing.T) {
	a := newTestAPI(t, nil)
	resp, cookie := a.register("alice")

	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	rec := a.do(http.MethodGet, "/api/v1/auth/me", nil, resp.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var me map[string]UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, resp.User.ID, me["user"].ID)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterValidation(t *testing.T) {
	a := newTestAPI(t, nil)
	tests := []struct {
		name string
		body any
	}{
		{"short username", RegisterRequest{Username: "ab", Email: "ab@example.com", Password: "secret1"}},
		{"long username", RegisterRequest{Username: "abcdefghijklmnopqrstu", Email: "x@example.com", Password: "secret1"}},
		{"bad email", RegisterRequest{Username: "carol", Email: "not-an-email", Password: "secret1"}},
		{"short password", RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "12345"}},
		{"not json", "just a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, "/api/v1/auth/register", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, CodeValidation, errorCode(t, rec))
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice")

	rec := a.do(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "secret1",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeUserExists, errorCode(t, rec))
}

func TestLogin(t *testing.T) {
	a := newTestAPI(t, nil)
	a.register("alice")

	rec := a.do(http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "ALICE@example.com", Password: "secret1"}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, refreshCookie(rec))

	for _, body := range []LoginRequest{
		{Email: "alice@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret1"},
	} {
		rec := a.do(http.MethodPost, "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CodeInvalidCredentials, errorCode(t, rec))
	}
}

func TestRefresh(t *testing.T) {
	a := newTestAPI(t, nil)
	resp, cookie := a.register("alice")

	t.Run("cookie", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/auth/refresh", nil, "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		var tok TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
		assert.NotEmpty(t, tok.AccessToken)
	})

	t.Run("body", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/auth/refresh", RefreshRequest{RefreshToken: cookie.Value}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/auth/refresh", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CodeNoRefreshToken, errorCode(t, rec))
	})

	t.Run("access token rejected", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/api/v1/auth/refresh", RefreshRequest{RefreshToken: resp.AccessToken}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, CodeInvalidRefreshToken, errorCode(t, rec))
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	a := newTestAPI(t, nil)
	rec := a.do(http.MethodPost, "/api/v1/auth/logout", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	c := refreshCookie(rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestBearerRequired(t *testing.T) {
	a := newTestAPI(t, nil)
	resp, cookie := a.register("alice")

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{"missing", "", CodeNoToken},
		{"garbage", "abc.def.ghi", CodeInvalidToken},
		{"refresh token", cookie.Value, CodeInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodGet, "/api/v1/scores/stats/me", nil, tt.token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}

	rec := a.do(http.MethodGet, "/api/v1/scores/stats/me", nil, resp.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGames(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(http.MethodPost, "/api/v1/games/seed", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"count":2}`, rec.Body.String())
	a.seed()

	rec = a.do(http.MethodGet, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list map[string][]GameDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list["games"], 2)
	assert.Equal(t, "pong", list["games"][0].Slug)

	rec = a.do(http.MethodGet, "/api/v1/games/snake", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/api/v1/games/chess", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeGameNotFound, errorCode(t, rec))
}

func TestSubmitScore(t *testing.T) {
	a := newTestAPI(t, nil)
	a.seed()
	resp, _ := a.register("alice")

	rec := a.do(http.MethodPost, "/api/v1/scores/snake", map[string]int{"value": 0}, resp.AccessToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]ScoreDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "snake", created["score"].GameSlug)
	assert.Equal(t, resp.User.ID, created["score"].UserID)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"negative", "/api/v1/scores/snake", map[string]int{"value": -1}, http.StatusBadRequest, CodeValidation},
		{"missing value", "/api/v1/scores/snake", map[string]int{}, http.StatusBadRequest, CodeValidation},
		{"unknown game", "/api/v1/scores/chess", map[string]int{"value": 5}, http.StatusNotFound, CodeGameNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, tt.path, tt.body, resp.AccessToken)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestLeaderboardAndStats(t *testing.T) {
	a := newTestAPI(t, nil)
	a.seed()
	alice, _ := a.register("alice")
	bob, _ := a.register("bob")

	submit := func(token, slug string, v int) {
		rec := a.do(http.MethodPost, "/api/v1/scores/"+slug, map[string]int{"value": v}, token)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	submit(alice.AccessToken, "snake", 30)
	submit(bob.AccessToken, "snake", 70)
	submit(alice.AccessToken, "snake", 50)
	submit(alice.AccessToken, "pong", 4)

	rec := a.do(http.MethodGet, "/api/v1/scores/snake/leaderboard?limit=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var board map[string][]EntryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	require.Len(t, board["scores"], 2)
	assert.Equal(t, "bob", board["scores"][0].User.Username)
	assert.Equal(t, 70, board["scores"][0].Value)
	assert.Equal(t, 2, board["scores"][1].Rank)
	assert.Equal(t, 50, board["scores"][1].Value)

	rec = a.do(http.MethodGet, "/api/v1/scores/snake/leaderboard?limit=abc", nil, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &board))
	assert.Len(t, board["scores"], 3)

	rec = a.do(http.MethodGet, "/api/v1/scores/me/snake", nil, alice.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine map[string][]ScoreDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine["scores"], 2)
	assert.Equal(t, 50, mine["scores"][0].Value)

	rec = a.do(http.MethodGet, "/api/v1/scores/stats/me", nil, alice.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"stats":[
		{"gameSlug":"pong","bestScore":4,"totalPlays":1},
		{"gameSlug":"snake","bestScore":50,"totalPlays":2}
	]}`, rec.Body.String())
}

func TestAuthRateLimit(t *testing.T) {
	a := newTestAPI(t, func(c *config.APIConfig) {
		c.AuthLimit = config.RateLimit{Requests: 2, Window: time.Minute}
	})

	body := LoginRequest{Email: "nobody@example.com", Password: "x"}
	for range 2 {
		rec := a.do(http.MethodPost, "/api/v1/auth/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := a.do(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, CodeRateLimit, errorCode(t, rec))

	// other routes are not limited by the auth budget
	rec = a.do(http.MethodGet, "/api/v1/games", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func corsRequest(t *testing.T, a *testAPI, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/api/v1/games", nil)
	req.Header.Set("Origin", origin)
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	a := newTestAPI(t, nil)

	tests := []struct {
		name   string
		method string
		origin string
		allow  string
	}{
		{"preflight from configured origin", http.MethodOptions, "http://localhost:5173", "http://localhost:5173"},
		{"get from configured origin", http.MethodGet, "http://localhost:5173", "http://localhost:5173"},
		{"preflight from foreign origin", http.MethodOptions, "http://evil.example", ""},
		{"get from foreign origin", http.MethodGet, "http://evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := corsRequest(t, a, tt.method, tt.origin)
			assert.Equal(t, tt.allow, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.allow != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.method == http.MethodOptions && tt.allow != "" {
				assert.Less(t, rec.Code, 300)
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			}
		})
	}
}

func TestCORSDisabledWithoutOrigin(t *testing.T) {
	a := newTestAPI(t, func(c *config.APIConfig) { c.CORSOrigin = "" })
	rec := corsRequest(t, a, http.MethodGet, "http://localhost:5173")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerDefaultsRequireSecret(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GAMEHUB_JWT_SECRET", "")

	cfg, err := config.LoadServer("")
	require.NoError(t, err)
	_, err = auth.NewIssuer(cfg.API.JWTSecret, cfg.API.AccessTTL, cfg.API.RefreshTTL)
	assert.ErrorIs(t, err, auth.ErrNoSecret)
}
