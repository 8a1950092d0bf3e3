// Package auth handles local account registration and the login session.
// Credentials are bcrypt hashes kept in the storage provider; there is no
// network identity, a username is an account.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"dailyhabit/internal/models"
	"dailyhabit/internal/storage"
)

const MinUsernameLength = 2

var (
	ErrUsernameTooShort   = fmt.Errorf("username must be at least %d characters", MinUsernameLength)
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// Register creates a new account with a default profile and logs it in.
func Register(store storage.Provider, username, password string) error {
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return ErrUsernameTooShort
	}
	if password == "" {
		return ErrEmptyPassword
	}

	if _, err := store.GetCredential(username); err == nil {
		return storage.ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := store.SaveCredential(username, string(hash)); err != nil {
		return err
	}
	if err := store.SaveProfile(models.DefaultProfile(username)); err != nil {
		return err
	}
	return store.SetCurrentUser(username)
}

// Login verifies the password and starts a session. The same error is
// returned for an unknown user and a wrong password.
func Login(store storage.Provider, username, password string) error {
	username = strings.TrimSpace(username)

	hash, err := store.GetCredential(username)
	if errors.Is(err, storage.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return store.SetCurrentUser(username)
}

// Logout ends the current session. It is not an error to log out while
// logged out.
func Logout(store storage.Provider) error {
	return store.ClearCurrentUser()
}

// CurrentUser returns the logged-in username.
func CurrentUser(store storage.Provider) (string, error) {
	return store.CurrentUser()
}
