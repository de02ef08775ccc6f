package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/session"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
)

func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		text := texts[i%len(texts)]
		i++
		return text, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAPI struct {
	token string

	regName  string
	regEmail string
	regPass  string
	regErr   error

	loginEmail  string
	loginResult *client.LoginResult
	loginErr    error
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) ClearToken()           { f.token = "" }

func (f *fakeAPI) Register(_ context.Context, name, email, password string) (string, error) {
	f.regName, f.regEmail, f.regPass = name, email, password
	return "u-new", f.regErr
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*client.LoginResult, error) {
	f.loginEmail = email
	return f.loginResult, f.loginErr
}

func (f *fakeAPI) GetProfile(context.Context) (*client.User, error)   { return nil, nil }
func (f *fakeAPI) UpdateProfile(_ context.Context, name string) (*client.User, error) {
	return &client.User{ID: "u-1", Name: name}, nil
}
func (f *fakeAPI) ListTasks(context.Context) ([]client.Task, error) { return nil, nil }
func (f *fakeAPI) CreateTask(_ context.Context, title, description, status string) (*client.Task, error) {
	return &client.Task{ID: "t-1", Title: title, Description: description, Status: status}, nil
}
func (f *fakeAPI) UpdateTask(_ context.Context, id string, _ client.TaskPatch) (*client.Task, error) {
	return &client.Task{ID: id}, nil
}
func (f *fakeAPI) DeleteTask(_ context.Context, id string) (*client.Task, error) {
	return &client.Task{ID: id}, nil
}
func (f *fakeAPI) Ping(context.Context) error { return nil }

func newTestApp(api client.Client) *App {
	return &App{
		client:  api,
		session: session.New(api, session.NewMemoryStorage()),
		logger:  logging.NewZerologLogger(zerolog.Nop()),
	}
}

func TestRegister_PassesInputsThrough(t *testing.T) {
	f := &fakeAPI{}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"Alice", "alice@example.org"}, []byte("secret1"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regName != "Alice" || f.regEmail != "alice@example.org" {
		t.Fatalf("Register inputs mismatch: %q %q", f.regName, f.regEmail)
	}
	if f.regPass != "secret1" {
		t.Fatalf("Register pass mismatch: %q", f.regPass)
	}
	if a.isLoggedIn() {
		t.Fatalf("registration must not sign the user in")
	}
}

func TestLogin_SetsSession(t *testing.T) {
	f := &fakeAPI{loginResult: &client.LoginResult{Token: "tok", Name: "Alice", ID: "u-1"}}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret1"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in session")
	}
	if f.token != "tok" {
		t.Fatalf("token not set on client: %q", f.token)
	}
	if a.getStatus() != "(Alice)" {
		t.Fatalf("unexpected status: %q", a.getStatus())
	}
}

func TestLogin_FailurePropagates(t *testing.T) {
	f := &fakeAPI{loginErr: client.ErrUnauthorized}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatalf("want error")
	}
	if a.isLoggedIn() {
		t.Fatalf("session must stay logged out")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	f := &fakeAPI{loginResult: &client.LoginResult{Token: "tok", Name: "Alice", ID: "u-1"}}
	a := newTestApp(f)

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret1"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("expected logged-out session")
	}
	if f.token != "" {
		t.Fatalf("token not cleared: %q", f.token)
	}
}
