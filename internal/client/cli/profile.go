package cli

import (
	"context"
	"fmt"
	"os"
)

// Profile prints the signed-in user's account details.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.client.GetProfile(ctx)
	if err != nil {
		a.logger.Error(ctx, "could not load profile", "error", err.Error())
		return err
	}

	fmt.Printf("Name:  %s\nEmail: %s\nID:    %s\n", user.Name, user.Email, user.ID)
	return nil
}

// Rename changes the display name of the signed-in user.
func (a *App) Rename(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.UpdateName(ctx, name); err != nil {
		a.logger.Error(ctx, "could not update name", "error", err.Error())
		return err
	}

	fmt.Printf("Name updated to %s\n", a.session.User().Name)
	return nil
}
