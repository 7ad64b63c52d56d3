package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"lakehire/internal/model"
	"lakehire/internal/service"
)

// fallbackErrMsg is surfaced when an error body carries no message field.
const fallbackErrMsg = "request failed"

// APIError is the uniform error shape for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is a thin API wrapper: it attaches the bearer token when one is in
// storage and normalizes error signaling. It is advisory glue, not a
// resilience layer; it performs no retry or backoff.
type Client struct {
	baseURL string
	http    *http.Client
	storage TokenStorage
}

// New creates a client against baseURL with the given token storage.
func New(baseURL string, storage TokenStorage) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		storage: storage,
	}
}

// do issues one JSON request. The bearer token is attached if and only if one
// is present in storage at call time. On non-2xx the body is parsed for a
// message field, falling back to a generic failure message.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.storage.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func errorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	return fallbackErrMsg
}

// LoginResponse is the token pair returned by a successful login.
type LoginResponse struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	User         model.User `json:"user"`
}

// Login authenticates and persists the returned access token, so subsequent
// requests carry it as a bearer credential.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := c.storage.Save(resp.AccessToken); err != nil {
			return nil, fmt.Errorf("persist token: %w", err)
		}
	}
	return &resp, nil
}

// Logout clears the persisted token. The server-side session revocation is
// best effort; the local session ends regardless.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		_ = c.do(ctx, http.MethodPost, "/api/auth/logout", map[string]string{
			"refresh_token": refreshToken,
		}, nil)
	}
	return c.storage.Clear()
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string, role model.Role) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email":      email,
		"password":   password,
		"first_name": firstName,
		"last_name":  lastName,
		"role":       string(role),
	}, nil)
}

// VerifyEmail redeems a verification code.
func (c *Client) VerifyEmail(ctx context.Context, email, otp string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/verify-email", map[string]string{
		"email": email,
		"otp":   otp,
	}, nil)
}

// Me fetches the authenticated user.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Menu fetches the navigation menu for the caller's role.
func (c *Client) Menu(ctx context.Context) ([]service.MenuItem, error) {
	var items []service.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// PublicMenu fetches the anonymous navigation menu.
func (c *Client) PublicMenu(ctx context.Context) ([]service.MenuItem, error) {
	var items []service.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu/public", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListJobs fetches publicly visible jobs, optionally filtered.
func (c *Client) ListJobs(ctx context.Context, query string) ([]model.Job, error) {
	path := "/api/jobs"
	if query != "" {
		path += "?" + query
	}
	var jobs []model.Job
	if err := c.do(ctx, http.MethodGet, path, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches one job posting.
func (c *Client) GetJob(ctx context.Context, id string) (*model.Job, error) {
	var job model.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+id, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Apply submits an application to a job.
func (c *Client) Apply(ctx context.Context, jobID, coverLetter string) (*model.Application, error) {
	var application model.Application
	err := c.do(ctx, http.MethodPost, "/api/applications", map[string]string{
		"job_id":       jobID,
		"cover_letter": coverLetter,
	}, &application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// MyApplications lists the caller's applications.
func (c *Client) MyApplications(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if err := c.do(ctx, http.MethodGet, "/api/applications/me", nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

// MyProfile fetches the caller's own profile.
func (c *Client) MyProfile(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListProfiles fetches public consultant profiles.
func (c *Client) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UploadCV runs the two-step upload protocol: request a pre-authorized
// target, then PUT the raw bytes to it. Type and size are checked locally
// before any request is made; the server enforces them again.
func (c *Client) UploadCV(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 || len(data) > service.MaxCVSize {
		return "", &APIError{StatusCode: http.StatusBadRequest, Message: "file exceeds size limit"}
	}
	switch contentType {
	case "application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":
	default:
		return "", &APIError{StatusCode: http.StatusBadRequest, Message: "unsupported file type"}
	}

	var target service.UploadTarget
	err := c.do(ctx, http.MethodPost, "/api/cv/upload", map[string]interface{}{
		"filename":     filename,
		"content_type": contentType,
		"size":         len(data),
	}, &target)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+target.UploadURL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}
	return target.Path, nil
}
