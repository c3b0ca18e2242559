// Package client talks to the GameHub HTTP API. A Client submits and reads
// scores on behalf of a signed-in player and can stand in for the local store
// behind the game host.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/RohitDatta06/gamehub/internal/api"
	"github.com/RohitDatta06/gamehub/internal/host"
)

// ErrNotSignedIn is returned by authenticated calls without tokens.
var ErrNotSignedIn = errors.New("client: not signed in")

// Error is a non-2xx response decoded from the API error envelope.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("client: %s (%d %s)", e.Message, e.Status, e.Code)
}

// IsCode reports whether err is an API error with the given code.
func IsCode(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// Client is an API client. It is safe for sequential use only.
type Client struct {
	rest    *resty.Client
	hc      *http.Client
	access  string
	refresh string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithRefreshToken starts the client from a stored refresh token.
func WithRefreshToken(token string) Option {
	return func(c *Client) { c.refresh = token }
}

// New creates a client for the API rooted at baseURL, e.g.
// http://localhost:4000.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{hc: &http.Client{Timeout: 10 * time.Second}}
	for _, opt := range opts {
		opt(c)
	}
	// Tokens are carried explicitly, so the refresh cookie is read from
	// responses rather than kept in a jar.
	c.rest = resty.NewWithClient(c.hc).
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/api/v1").
		SetCookieJar(nil).
		SetHeader("Accept", "application/json")
	return c
}

// RefreshToken returns the current refresh token.
func (c *Client) RefreshToken() string { return c.refresh }

// SignedIn reports whether the client holds any token.
func (c *Client) SignedIn() bool { return c.access != "" || c.refresh != "" }

// Register creates an account and signs in.
func (c *Client) Register(ctx context.Context, username, email, password string) (api.UserDTO, error) {
	return c.signIn(ctx, "/auth/register", api.RegisterRequest{Username: username, Email: email, Password: password})
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (api.UserDTO, error) {
	return c.signIn(ctx, "/auth/login", api.LoginRequest{Email: email, Password: password})
}

func (c *Client) signIn(ctx context.Context, path string, body any) (api.UserDTO, error) {
	var out api.AuthResponse
	resp, err := c.do(ctx, http.MethodPost, path, false, func(r *resty.Request) {
		r.SetBody(body).SetResult(&out)
	})
	if err != nil {
		return api.UserDTO{}, err
	}
	c.access = out.AccessToken
	for _, ck := range resp.Cookies() {
		if ck.Name == api.RefreshCookie {
			c.refresh = ck.Value
		}
	}
	return out.User, nil
}

// Refresh exchanges the refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context) error {
	if c.refresh == "" {
		return ErrNotSignedIn
	}
	var out api.TokenResponse
	_, err := c.do(ctx, http.MethodPost, "/auth/refresh", false, func(r *resty.Request) {
		r.SetBody(api.RefreshRequest{RefreshToken: c.refresh}).SetResult(&out)
	})
	if err != nil {
		return err
	}
	c.access = out.AccessToken
	return nil
}

// Logout forgets the tokens and tells the server to clear its cookie.
func (c *Client) Logout(ctx context.Context) error {
	c.access, c.refresh = "", ""
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", false, nil)
	return err
}

// Me returns the signed-in account.
func (c *Client) Me(ctx context.Context) (api.UserDTO, error) {
	var resp struct {
		User api.UserDTO `json:"user"`
	}
	_, err := c.do(ctx, http.MethodGet, "/auth/me", true, func(r *resty.Request) {
		r.SetResult(&resp)
	})
	return resp.User, err
}

// Games lists the catalog.
func (c *Client) Games(ctx context.Context) ([]api.GameDTO, error) {
	var resp struct {
		Games []api.GameDTO `json:"games"`
	}
	_, err := c.do(ctx, http.MethodGet, "/games", false, func(r *resty.Request) {
		r.SetResult(&resp)
	})
	return resp.Games, err
}

// Stats returns the signed-in player's per-game summary.
func (c *Client) Stats(ctx context.Context) ([]api.StatDTO, error) {
	var resp struct {
		Stats []api.StatDTO `json:"stats"`
	}
	_, err := c.do(ctx, http.MethodGet, "/scores/stats/me", true, func(r *resty.Request) {
		r.SetResult(&resp)
	})
	return resp.Stats, err
}

// SubmitScore implements host.ScoreSubmitter.
func (c *Client) SubmitScore(ctx context.Context, gameID string, value int) (host.Receipt, error) {
	var resp struct {
		Score api.ScoreDTO `json:"score"`
	}
	_, err := c.do(ctx, http.MethodPost, "/scores/{slug}", true, func(r *resty.Request) {
		r.SetPathParam("slug", gameID).
			SetBody(map[string]int{"value": value}).
			SetResult(&resp)
	})
	if err != nil {
		return host.Receipt{}, err
	}
	return host.Receipt{
		ID:    resp.Score.ID,
		Game:  resp.Score.GameSlug,
		Value: resp.Score.Value,
		At:    resp.Score.CreatedAt,
	}, nil
}

// Leaderboard implements host.LeaderboardReader.
func (c *Client) Leaderboard(ctx context.Context, gameID string, limit int) ([]host.Standing, error) {
	var resp struct {
		Scores []api.EntryDTO `json:"scores"`
	}
	_, err := c.do(ctx, http.MethodGet, "/scores/{slug}/leaderboard", false, func(r *resty.Request) {
		r.SetPathParam("slug", gameID).
			SetQueryParam("limit", strconv.Itoa(limit)).
			SetResult(&resp)
	})
	if err != nil {
		return nil, err
	}
	standings := make([]host.Standing, len(resp.Scores))
	for i, e := range resp.Scores {
		standings[i] = host.Standing{Rank: e.Rank, Player: e.User.Username, Value: e.Value, At: e.CreatedAt}
	}
	return standings, nil
}

// do sends one request configured by build. Authenticated calls refresh an
// expired access token once and retry.
func (c *Client) do(ctx context.Context, method, path string, authed bool, build func(*resty.Request)) (*resty.Response, error) {
	if authed && c.access == "" {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := c.send(ctx, method, path, authed, build)
	if authed && IsCode(err, api.CodeInvalidToken) && c.refresh != "" {
		if rerr := c.Refresh(ctx); rerr != nil {
			return nil, rerr
		}
		return c.send(ctx, method, path, authed, build)
	}
	return resp, err
}

func (c *Client) send(ctx context.Context, method, path string, authed bool, build func(*resty.Request)) (*resty.Response, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetError(&api.ErrorResponse{})
	if authed {
		req.SetAuthToken(c.access)
	}
	if build != nil {
		build(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return resp, fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		env, _ := resp.Error().(*api.ErrorResponse)
		if env == nil || env.Error.Code == "" {
			return resp, &Error{Status: resp.StatusCode(), Code: "HTTP_ERROR", Message: resp.Status()}
		}
		return resp, &Error{Status: resp.StatusCode(), Code: env.Error.Code, Message: env.Error.Message}
	}
	return resp, nil
}
