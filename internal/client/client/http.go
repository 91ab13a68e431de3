package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/dmitrijs2005/gigdesk/internal/logging"
	"github.com/dmitrijs2005/gigdesk/internal/netx"
	"github.com/google/uuid"
)

// HTTPClient talks to the marketplace REST API.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// NewHTTPClient builds a client for baseURL (e.g. "http://localhost:5000/api").
// tokens may be nil for anonymous use.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{baseURL: u, http: &http.Client{}, tokens: tokens, log: logging.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) currentToken() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	token       string
}

func jsonRequest(method, path string, v any) (request, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return request{}, fmt.Errorf("encode body: %w", err)
	}
	return request{method: method, path: path, body: bytes.NewReader(b), contentType: "application/json"}, nil
}

// do sends r and returns the raw 2xx body.
func (c *HTTPClient) do(ctx context.Context, r request) ([]byte, error) {
	endpoint := c.baseURL.String() + r.path

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, r.body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapTransportError(ctx, r, reqID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rerr := &RemoteError{Status: resp.StatusCode, Message: netx.ErrorMessage(resp)}
		c.log.Warn(ctx, "request rejected", "method", r.method, "path", r.path, "request_id", reqID, "status", resp.StatusCode, "message", rerr.Message)
		return nil, rerr
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.mapTransportError(ctx, r, reqID, err)
	}
	c.log.Debug(ctx, "request ok", "method", r.method, "path", r.path, "request_id", reqID, "status", resp.StatusCode)
	return b, nil
}

func (c *HTTPClient) mapTransportError(ctx context.Context, r request, reqID string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if netx.IsNetworkError(err) {
		c.log.Warn(ctx, "server unreachable", "method", r.method, "path", r.path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

// decodeEnveloped decodes b into T, accepting both a bare value and one
// wrapped as {"<key>": value}.
func decodeEnveloped[T any](b []byte, key string) (T, error) {
	var zero T
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &env); err == nil {
			if raw, ok := env[key]; ok && len(raw) > 0 && string(raw) != "null" {
				var v T
				if err := json.Unmarshal(raw, &v); err != nil {
					return zero, fmt.Errorf("decode %s: %w", key, err)
				}
				return v, nil
			}
		}
	}
	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

func (c *HTTPClient) decodeAuth(b []byte) (*AuthResult, error) {
	var res AuthResult
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}
	if res.Token == "" {
		return nil, errors.New("auth response without token")
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	r, err := jsonRequest(http.MethodPost, "/auth/login", map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}
	b, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	return c.decodeAuth(b)
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	body, ct, err := encodeRegister(req)
	if err != nil {
		return nil, err
	}
	b, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: body, contentType: ct})
	if err != nil {
		return nil, err
	}
	return c.decodeAuth(b)
}

func (c *HTTPClient) Me(ctx context.Context, token string) (*models.UserProfile, error) {
	b, err := c.do(ctx, request{method: http.MethodGet, path: "/auth/me", token: token})
	if err != nil {
		return nil, err
	}
	u, err := decodeEnveloped[models.UserProfile](b, "user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.UserProfile, error) {
	if upd.Skills == nil {
		upd.Skills = []string{}
	}
	r, err := jsonRequest(http.MethodPut, "/auth/update", upd)
	if err != nil {
		return nil, err
	}
	r.token = c.currentToken()
	b, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	u, err := decodeEnveloped[models.UserProfile](b, "user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UploadProfilePic(ctx context.Context, image Attachment) (*models.UserProfile, error) {
	fw := newFormWriter()
	fw.file(FieldImage, image)
	body, ct, err := fw.finish()
	if err != nil {
		return nil, err
	}
	b, err := c.do(ctx, request{method: http.MethodPut, path: "/auth/profile-pic", body: body, contentType: ct, token: c.currentToken()})
	if err != nil {
		return nil, err
	}
	u, err := decodeEnveloped[models.UserProfile](b, "user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) RequestReset(ctx context.Context, email string) error {
	r, err := jsonRequest(http.MethodPost, "/auth/request-reset", map[string]string{"email": email})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, r)
	return err
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp, newPassword string) error {
	r, err := jsonRequest(http.MethodPost, "/auth/verify-otp", map[string]string{"email": email, "otp": otp, "newPassword": newPassword})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, r)
	return err
}

func (c *HTTPClient) ListGigs(ctx context.Context) ([]models.Gig, error) {
	b, err := c.do(ctx, request{method: http.MethodGet, path: "/gigs"})
	if err != nil {
		return nil, err
	}
	return decodeEnveloped[[]models.Gig](b, "gigs")
}

func (c *HTTPClient) GetGig(ctx context.Context, id string) (*models.Gig, error) {
	b, err := c.do(ctx, request{method: http.MethodGet, path: "/gigs/" + url.PathEscape(id)})
	if err != nil {
		return nil, err
	}
	g, err := decodeEnveloped[models.Gig](b, "gig")
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *HTTPClient) MyGigs(ctx context.Context) ([]models.Gig, error) {
	b, err := c.do(ctx, request{method: http.MethodGet, path: "/gigs/my", token: c.currentToken()})
	if err != nil {
		return nil, err
	}
	return decodeEnveloped[[]models.Gig](b, "gigs")
}

func (c *HTTPClient) CreateGig(ctx context.Context, p GigPayload) (*models.Gig, error) {
	body, ct, err := encodeGig(p, false)
	if err != nil {
		return nil, err
	}
	b, err := c.do(ctx, request{method: http.MethodPost, path: "/gigs", body: body, contentType: ct, token: c.currentToken()})
	if err != nil {
		return nil, err
	}
	g, err := decodeEnveloped[models.Gig](b, "gig")
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *HTTPClient) UpdateGig(ctx context.Context, id string, p GigPayload) (*models.Gig, error) {
	body, ct, err := encodeGig(p, true)
	if err != nil {
		return nil, err
	}
	b, err := c.do(ctx, request{method: http.MethodPut, path: "/gigs/" + url.PathEscape(id), body: body, contentType: ct, token: c.currentToken()})
	if err != nil {
		return nil, err
	}
	g, err := decodeEnveloped[models.Gig](b, "gig")
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (c *HTTPClient) DeleteGig(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: "/gigs/" + url.PathEscape(id), token: c.currentToken()})
	return err
}
