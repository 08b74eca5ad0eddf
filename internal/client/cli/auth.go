package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Register prompts the user for a username and password and attempts to
// create a new account. The account still has to be logged into afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.auth.Register(ctx, username, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! Now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the session is persisted durably, so the next start of the
// program restores it without asking again.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Logged in as %s", user.Username)
	a.setMode(ModeOnline)
	return nil
}

// Logout erases the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Println("Logged out")
	return nil
}

// Whoami shows the current session: user, connectivity mode and, when the
// token carries one, its expiry.
func (a *App) Whoami(ctx context.Context) error {
	info := a.auth.Info()
	if !info.Authenticated {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("Logged in as %s (id %d), %s\n", info.Username, info.UserID, a.Mode)
	if !info.TokenExpiry.IsZero() {
		fmt.Printf("Session expires at %s\n", info.TokenExpiry.Local())
	}
	return nil
}
