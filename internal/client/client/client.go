// Package client implements the HTTP API client used by the CLI. It attaches
// the identity token to every request and maps transport and status failures
// to sentinel errors.
package client

import "context"

// User is the client-side view of a profile.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Task mirrors the server's task representation.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// TaskPatch carries the fields of a partial task update. Nil leaves a field
// unchanged.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Client is the API surface the session holder and the CLI operate on.
type Client interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, name string) (*User, error)

	ListTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, title, description, status string) (*Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*Task, error)
	DeleteTask(ctx context.Context, id string) (*Task, error)

	Ping(ctx context.Context) error

	// SetToken installs the token attached to subsequent requests;
	// ClearToken removes it.
	SetToken(token string)
	ClearToken()
}
