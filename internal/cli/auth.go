package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avasin/brewmart/internal/common"
	"github.com/avasin/brewmart/internal/models"
	"github.com/avasin/brewmart/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a username, email and password (with confirmation),
// validates each field locally and attempts to create the account.
//
// On success it prints a greeting and returns nil; the new user is logged in
// immediately. A taken username is reported to the user without an error.
// The password byte slices are wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	if err := validation.ValidateUsername(username); err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.ValidateEmail(email) {
		printlnFn("Error: invalid email address")
		return nil
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validation.ValidatePassword(string(password)); err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := validation.ValidateConfirmPassword(string(password), string(confirm)); err != nil {
		printlnFn("Error:", err.Error())
		return nil
	}

	ok, err := a.sessionService.Signup(ctx, username, email, string(password))
	if err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		return err
	}
	if !ok {
		printlnFn("Username already exists.")
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", username))
	return nil
}

// Login prompts for a username and password and tries to authenticate.
//
// A wrong username/password pair is reported with a single generic message;
// the caller cannot tell which of the two was wrong. The password byte slice
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if username == "" || len(password) == 0 {
		printlnFn("Please fill in all fields.")
		return nil
	}

	ok, err := a.sessionService.Login(ctx, username, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}
	if !ok {
		printlnFn("Invalid username or password.")
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", username))
	return nil
}

// Logout clears the persisted session and resets the catalog view filters.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessionService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.searchTerm = ""
	a.selectedCategory = models.CategoryAll
	printlnFn("Logged out.")
	return nil
}
