package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/savasana/yoga-client/internal/config"
	"github.com/savasana/yoga-client/internal/logger"
	"github.com/savasana/yoga-client/models"
)

type httpResourceGateway struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPResourceGateway constructs an HTTP/REST implementation of
// [ResourceGateway]. It normalises and validates the base URL from
// serverCfg.Address and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if serverCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPResourceGateway(serverCfg config.ServerConn, log *logger.Logger) (ResourceGateway, error) {
	baseURL, err := normalizeBaseURL(serverCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(serverCfg.RequestTimeout)

	return &httpResourceGateway{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

func (h *httpResourceGateway) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpResourceGateway) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// newRequest prepares a request with a per-request correlation id.
func (h *httpResourceGateway) newRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
}

// authedRequest attaches the bearer token when one is present.
func (h *httpResourceGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.newRequest(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpResourceGateway) Login(ctx context.Context, loginReq models.LoginRequest) (models.Identity, error) {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginReq).
		Post("/api/auth/login")
	if err != nil {
		return models.Identity{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err = json.Unmarshal(resp.Body(), &identity); err != nil {
		return models.Identity{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(identity.Token)
	h.logger.Debug().Int64("user_id", identity.ID).Msg("logged in")

	return identity, nil
}

func (h *httpResourceGateway) Register(ctx context.Context, registerReq models.RegisterRequest) error {
	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(registerReq).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpResourceGateway) Sessions(ctx context.Context) ([]models.Session, error) {
	resp, err := h.authedRequest(ctx).Get("/api/session")
	if err != nil {
		return nil, fmt.Errorf("sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sessions []models.Session
	if err = json.Unmarshal(resp.Body(), &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions response: %w", err)
	}

	return sessions, nil
}

func (h *httpResourceGateway) Session(ctx context.Context, id int64) (models.Session, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/session/%d", id))
	if err != nil {
		return models.Session{}, fmt.Errorf("session detail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session response: %w", err)
	}

	return session, nil
}

func (h *httpResourceGateway) CreateSession(ctx context.Context, form models.SessionForm) (models.Session, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		Post("/api/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode create session response: %w", err)
	}

	return session, nil
}

func (h *httpResourceGateway) UpdateSession(ctx context.Context, id int64, form models.SessionForm) (models.Session, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(form).
		Put(fmt.Sprintf("/api/session/%d", id))
	if err != nil {
		return models.Session{}, fmt.Errorf("update session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode update session response: %w", err)
	}

	return session, nil
}

func (h *httpResourceGateway) DeleteSession(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/session/%d", id))
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpResourceGateway) Participate(ctx context.Context, sessionID, userID int64) error {
	resp, err := h.authedRequest(ctx).
		Post(fmt.Sprintf("/api/session/%d/participate/%d", sessionID, userID))
	if err != nil {
		return fmt.Errorf("participate request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpResourceGateway) UnParticipate(ctx context.Context, sessionID, userID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete(fmt.Sprintf("/api/session/%d/participate/%d", sessionID, userID))
	if err != nil {
		return fmt.Errorf("unparticipate request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpResourceGateway) Teachers(ctx context.Context) ([]models.Teacher, error) {
	resp, err := h.authedRequest(ctx).Get("/api/teacher")
	if err != nil {
		return nil, fmt.Errorf("teachers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var teachers []models.Teacher
	if err = json.Unmarshal(resp.Body(), &teachers); err != nil {
		return nil, fmt.Errorf("decode teachers response: %w", err)
	}

	return teachers, nil
}

func (h *httpResourceGateway) Teacher(ctx context.Context, id int64) (models.Teacher, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/teacher/%d", id))
	if err != nil {
		return models.Teacher{}, fmt.Errorf("teacher detail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Teacher{}, err
	}

	var teacher models.Teacher
	if err = json.Unmarshal(resp.Body(), &teacher); err != nil {
		return models.Teacher{}, fmt.Errorf("decode teacher response: %w", err)
	}

	return teacher, nil
}

func (h *httpResourceGateway) User(ctx context.Context, id int64) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get(fmt.Sprintf("/api/user/%d", id))
	if err != nil {
		return models.User{}, fmt.Errorf("user detail request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return user, nil
}

func (h *httpResourceGateway) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(fmt.Sprintf("/api/user/%d", id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}
