package accounts

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
	"tunebox/internal/auth"
	"tunebox/internal/repositories"
	"tunebox/internal/shared"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewService(ServiceOpts{
		Users:  repositories.NewUserRepository(db),
		Tokens: auth.NewIssuer([]byte("test_secret"), time.Hour),
		Hasher: auth.NewHasher(bcrypt.MinCost),
	})
}

func TestRegister(t *testing.T) {
	t.Run("CreatesUserWithToken", func(t *testing.T) {
		svc := setupService(t)

		summary, token, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if summary.ID == "" {
			t.Error("expected a generated id")
		}
		if summary.Name != "Test User" || summary.Email != "test@example.com" {
			t.Errorf("unexpected summary: %+v", summary)
		}

		claims, err := svc.Tokens().Verify(token)
		if err != nil {
			t.Fatalf("token from Register failed verification: %v", err)
		}
		if claims.UserID != summary.ID || claims.Email != summary.Email {
			t.Errorf("token claims %q/%q do not match summary %q/%q", claims.UserID, claims.Email, summary.ID, summary.Email)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := setupService(t)

		cases := []struct {
			name, email, password string
		}{
			{"", "test@example.com", "password1"},
			{"Test User", "", "password1"},
			{"Test User", "test@example.com", ""},
		}

		for _, c := range cases {
			if _, _, err := svc.Register(c.name, c.email, c.password); !errors.Is(err, shared.ErrValidation) {
				t.Errorf("Register(%q, %q, ...) = %v, want ErrValidation", c.name, c.email, err)
			}
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := setupService(t)

		if _, _, err := svc.Register("First", "dup@example.com", "password1"); err != nil {
			t.Fatalf("first Register failed: %v", err)
		}

		if _, _, err := svc.Register("Second", "dup@example.com", "password2"); !errors.Is(err, shared.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("ValidCredentials", func(t *testing.T) {
		svc := setupService(t)

		registered, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		summary, token, err := svc.Authenticate("test@example.com", "password1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if summary.ID != registered.ID {
			t.Errorf("authenticated id %q does not match registered id %q", summary.ID, registered.ID)
		}
		if token == "" {
			t.Error("expected a session token")
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc := setupService(t)

		if _, _, err := svc.Authenticate("nobody@example.com", "password1"); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := setupService(t)

		if _, _, err := svc.Register("Test User", "test@example.com", "password1"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if _, _, err := svc.Authenticate("test@example.com", "wrong-password"); !errors.Is(err, shared.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := setupService(t)

		if _, _, err := svc.Authenticate("", "password1"); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("ReplacesDigest", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if err := svc.ChangePassword(summary.ID, "password1", "newpassword2"); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}

		if _, _, err := svc.Authenticate("test@example.com", "password1"); !errors.Is(err, shared.ErrWrongPassword) {
			t.Error("old password still authenticates after change")
		}
		if _, _, err := svc.Authenticate("test@example.com", "newpassword2"); err != nil {
			t.Errorf("new password failed to authenticate: %v", err)
		}
	})

	t.Run("WeakNewPassword", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		for _, weak := range []string{"short1", "12345678", "onlyletters"} {
			if err := svc.ChangePassword(summary.ID, "password1", weak); !errors.Is(err, shared.ErrWeakPassword) {
				t.Errorf("ChangePassword(..., %q) = %v, want ErrWeakPassword", weak, err)
			}
		}

		// A rejected candidate must leave the stored digest untouched.
		if _, _, err := svc.Authenticate("test@example.com", "password1"); err != nil {
			t.Errorf("original password no longer authenticates: %v", err)
		}
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if err := svc.ChangePassword(summary.ID, "wrong-password", "newpassword2"); !errors.Is(err, shared.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := setupService(t)

		if err := svc.ChangePassword("some-id", "", "newpassword2"); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("ChangesName", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Old Name", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		updated, err := svc.UpdateProfile(summary.ID, "New Name")
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if updated.Name != "New Name" {
			t.Errorf("expected name %q, got %q", "New Name", updated.Name)
		}
		if updated.ID != summary.ID || updated.Email != summary.Email {
			t.Error("UpdateProfile changed identity fields")
		}
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if _, err := svc.UpdateProfile(summary.ID, "  "); !errors.Is(err, shared.ErrValidation) {
			t.Errorf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := setupService(t)

		if _, err := svc.UpdateProfile("nonexistent-id", "New Name"); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("RemovesUser", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if err := svc.DeleteAccount(summary.ID, "password1"); err != nil {
			t.Fatalf("DeleteAccount failed: %v", err)
		}

		if _, _, err := svc.Authenticate("test@example.com", "password1"); !errors.Is(err, shared.ErrUserNotFound) {
			t.Error("deleted user still authenticates")
		}

		// Deletion is permanent, so a second delete has nothing to remove.
		if err := svc.DeleteAccount(summary.ID, "password1"); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound on re-delete, got %v", err)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := setupService(t)

		summary, _, err := svc.Register("Test User", "test@example.com", "password1")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if err := svc.DeleteAccount(summary.ID, "wrong-password"); !errors.Is(err, shared.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}

		// User must survive the failed attempt.
		if _, _, err := svc.Authenticate("test@example.com", "password1"); err != nil {
			t.Errorf("user missing after failed delete: %v", err)
		}
	})
}

func TestListUsers(t *testing.T) {
	svc := setupService(t)

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		if _, _, err := svc.Register("User", email, "password1"); err != nil {
			t.Fatalf("Register(%q) failed: %v", email, err)
		}
	}

	summaries, err := svc.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(summaries) != len(emails) {
		t.Fatalf("expected %d users, got %d", len(emails), len(summaries))
	}

	// Insertion order via sequence numbers.
	for i, summary := range summaries {
		if summary.Email != emails[i] {
			t.Errorf("position %d: expected %q, got %q", i, emails[i], summary.Email)
		}
	}
}

func TestDeleteByEmail(t *testing.T) {
	svc := setupService(t)

	if _, _, err := svc.Register("Test User", "test@example.com", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := svc.DeleteByEmail("test@example.com"); err != nil {
		t.Fatalf("DeleteByEmail failed: %v", err)
	}

	if err := svc.DeleteByEmail("test@example.com"); !errors.Is(err, shared.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	if err := svc.DeleteByEmail(""); !errors.Is(err, shared.ErrValidation) {
		t.Errorf("expected ErrValidation for empty email, got %v", err)
	}
}
