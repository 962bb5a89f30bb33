package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/cargo-office/internal/domain"
)

const (
	loginPath   = "/auth/login"
	periodsPath = "/api/v1/periods/"

	// maxErrorBody ограничивает чтение тела ответа с ошибкой
	maxErrorBody = 64 << 10
)

// HTTPBackendClient реализует domain.BackendClient поверх HTTP API бэкенда офиса
type HTTPBackendClient struct {
	baseURL    string
	keyword    string
	httpClient *http.Client
}

// NewBackendClient создает новый HTTPBackendClient
func NewBackendClient(baseURL, keyword string, timeout time.Duration) *HTTPBackendClient {
	return &HTTPBackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		keyword: keyword,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type periodRequest struct {
	Name string `json:"period_name"`
}

// Login обменивает логин и пароль на токен бэкенда
func (c *HTTPBackendClient) Login(ctx context.Context, login, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Login: login, Password: password})
	if err != nil {
		return "", fmt.Errorf("backend client: failed to encode login: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("backend client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("backend client: %w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var lr loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
			return "", fmt.Errorf("backend client: failed to decode login response: %w", err)
		}
		if lr.AccessToken == "" {
			return "", fmt.Errorf("backend client: login response without access_token")
		}
		return lr.AccessToken, nil

	case resp.StatusCode == http.StatusUnauthorized:
		return "", domain.ErrInvalidCredentials

	case resp.StatusCode >= http.StatusInternalServerError:
		return "", domain.ErrBackendInternal

	default:
		return "", NewBackendError(resp.StatusCode, readDetail(resp.Body))
	}
}

// ListPeriods получает список периодов
func (c *HTTPBackendClient) ListPeriods(ctx context.Context, ts domain.TokenSource) ([]domain.Period, error) {
	var periods []domain.Period
	if err := c.do(ctx, ts, http.MethodGet, periodsPath, nil, &periods); err != nil {
		return nil, err
	}
	if periods == nil {
		periods = []domain.Period{}
	}
	return periods, nil
}

// GetPeriod получает период по id
func (c *HTTPBackendClient) GetPeriod(ctx context.Context, ts domain.TokenSource, id int64) (*domain.Period, error) {
	var p domain.Period
	if err := c.do(ctx, ts, http.MethodGet, periodPath(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePeriod создает период. Ответ 400 означает, что период уже есть.
func (c *HTTPBackendClient) CreatePeriod(ctx context.Context, ts domain.TokenSource, name string) (*domain.Period, error) {
	var p domain.Period
	err := c.do(ctx, ts, http.MethodPost, periodsPath, periodRequest{Name: name}, &p)
	if err != nil {
		var be *BackendError
		if errors.As(err, &be) && be.StatusCode == http.StatusBadRequest {
			return nil, domain.ErrPeriodExists
		}
		return nil, err
	}
	return &p, nil
}

// UpdatePeriod переименовывает период
func (c *HTTPBackendClient) UpdatePeriod(ctx context.Context, ts domain.TokenSource, id int64, name string) (*domain.Period, error) {
	var p domain.Period
	if err := c.do(ctx, ts, http.MethodPut, periodPath(id), periodRequest{Name: name}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePeriod удаляет период
func (c *HTTPBackendClient) DeletePeriod(ctx context.Context, ts domain.TokenSource, id int64) error {
	return c.do(ctx, ts, http.MethodDelete, periodPath(id), nil, nil)
}

// Ping проверяет, что бэкенд отвечает. Любой HTTP ответ ниже 500 считается успехом.
func (c *HTTPBackendClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("backend client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend client: %w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.ErrBackendInternal
	}
	return nil
}

func periodPath(id int64) string {
	return periodsPath + strconv.FormatInt(id, 10)
}

// do выполняет авторизованный запрос. Ответ 401 сбрасывает токен сессии.
func (c *HTTPBackendClient) do(ctx context.Context, ts domain.TokenSource, method, path string, in, out any) error {
	token, ok := ts.AccessToken()
	if !ok {
		return domain.ErrUnauthorized
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend client: failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	query := url.Values{"local_kw": []string{c.keyword}}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), body)
	if err != nil {
		return fmt.Errorf("backend client: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend client: %w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("backend client: failed to decode response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		ts.Invalidate()
		return domain.ErrUnauthorized

	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrPeriodNotFound

	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.ErrBackendInternal

	default:
		return NewBackendError(resp.StatusCode, readDetail(resp.Body))
	}
}

// readDetail достает поле detail из ответа бэкенда. Строковый detail
// возвращается как есть, любой другой - в виде JSON, тело без JSON - текстом.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if len(envelope.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		return s
	}
	return string(envelope.Detail)
}
