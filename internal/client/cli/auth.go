package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, an email and a password and creates an
// account. Registration does not sign the user in; a separate login is
// required, mirroring the server flow.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.session.Register(ctx, name, email, string(password)); err != nil {
		a.logger.Error(ctx, "registration failed", "error", err.Error())
		return err
	}

	fmt.Println("Registered! Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and authenticates against the server.
// On success the session persists the token so the next run resumes
// signed in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.logger.Error(ctx, "server unavailable", "error", err.Error())
		} else {
			a.logger.Error(ctx, "login failed", "error", err.Error())
		}
		return err
	}

	fmt.Printf("Welcome, %s!\n", a.session.User().Name)
	return nil
}

// Logout drops the local session and the persisted token.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout()
	fmt.Println("Logged out.")
	return nil
}
