package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// HTTPClient talks to the TaskKeeper REST API. The token, once set, is sent
// literally in the auth-token request header, the same way the original
// browser client attached it from local storage.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.SetToken("")
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	var resp struct {
		User string `json:"user"`
	}
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/user/register", body, &resp); err != nil {
		return "", err
	}
	return resp.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result := &LoginResult{}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/user/login", body, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, name string) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodPut, "/api/user/profile", map[string]string{"name": name}, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]Task, error) {
	tasks := []Task{}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, title, description, status string) (*Task, error) {
	task := &Task{}
	body := map[string]string{"title": title, "description": description, "status": status}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error) {
	task := &Task{}
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, patch, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) (*Task, error) {
	task := &Task{}
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// do performs one JSON request/response cycle. A transport-level failure is
// reported as ErrUnavailable; 401 and 404 map to their sentinels; any other
// non-2xx status surfaces the server's error message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return fmt.Errorf("%s", apiErr.Error)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
