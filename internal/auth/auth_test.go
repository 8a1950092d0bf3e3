package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"dailyhabit/internal/storage"
)

func newStore(t *testing.T) storage.Provider {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "alice", "secret", nil},
		{"minimum length username", "ab", "secret", nil},
		{"too short", "a", "secret", ErrUsernameTooShort},
		{"whitespace only", "   ", "secret", ErrUsernameTooShort},
		{"empty password", "alice", "", ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			err := Register(s, tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			// Registration logs the new account in.
			u, err := s.CurrentUser()
			if err != nil {
				t.Fatalf("CurrentUser() error = %v", err)
			}
			if u != tt.username {
				t.Errorf("CurrentUser() = %q, want %q", u, tt.username)
			}

			// The stored credential is a hash, never the password.
			hash, err := s.GetCredential(tt.username)
			if err != nil {
				t.Fatalf("GetCredential() error = %v", err)
			}
			if hash == tt.password {
				t.Error("credential stored in plain text")
			}

			p, err := s.GetProfile(tt.username)
			if err != nil {
				t.Fatalf("GetProfile() error = %v", err)
			}
			if p.Points != 0 || p.Avatar == "" {
				t.Errorf("GetProfile() = %+v, want default profile", p)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := newStore(t)
	if err := Register(s, "alice", "secret"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := Register(s, "alice", "other"); !errors.Is(err, storage.ErrUsernameTaken) {
		t.Errorf("Register(duplicate) error = %v, want ErrUsernameTaken", err)
	}
}

func TestLoginLogout(t *testing.T) {
	s := newStore(t)
	if err := Register(s, "alice", "secret"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := Logout(s); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := CurrentUser(s); !errors.Is(err, storage.ErrNotLoggedIn) {
		t.Errorf("CurrentUser() after logout error = %v, want ErrNotLoggedIn", err)
	}

	if err := Login(s, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if err := Login(s, "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(unknown user) error = %v, want ErrInvalidCredentials", err)
	}

	if err := Login(s, "alice", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	u, err := CurrentUser(s)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if u != "alice" {
		t.Errorf("CurrentUser() = %q, want alice", u)
	}
}
