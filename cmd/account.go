package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Signup creates an account and persists the fresh session locally.
func (r *Runner) Signup(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	session, err := r.api.Signup(ctx, cmd.String("name"), cmd.String("email"), cmd.String("password"))
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	if err := st.SaveSession(session.Token, session.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlain("✓ Account created for %s <%s>\n", session.User.Name, session.User.Email)
	r.writePlain("✓ Signed in\n")
	return nil
}

// Login authenticates and persists the session locally.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	session, err := r.api.Login(ctx, cmd.String("email"), cmd.String("password"))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := st.SaveSession(session.Token, session.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlain("✓ Signed in as %s <%s>\n", session.User.Name, session.User.Email)
	return nil
}

// Logout discards the local session. Liked songs are kept for the next login.
func (r *Runner) Logout(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	if !st.Authenticated() {
		r.writePlain("Not signed in\n")
		return nil
	}

	if err := st.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.api.SetToken("")
	r.writePlain("✓ Signed out\n")
	return nil
}

// WhoAmI prints the stored identity.
func (r *Runner) WhoAmI(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	user, ok := st.User()
	if !ok {
		r.writePlain("Not signed in\n")
		return nil
	}

	r.writePlain("%s <%s>\n", user.Name, user.Email)
	r.writePlain("id: %s\n", user.ID)
	return nil
}

// ChangePassword rotates the password for the active session.
func (r *Runner) ChangePassword(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.session(); err != nil {
		return err
	}

	if err := r.api.ChangePassword(ctx, cmd.String("current"), cmd.String("new")); err != nil {
		return fmt.Errorf("password change failed: %w", err)
	}

	r.writePlain("✓ Password updated\n")
	return nil
}

// UpdateProfile changes the display name and refreshes the stored identity.
func (r *Runner) UpdateProfile(ctx context.Context, cmd *cli.Command) error {
	st, err := r.session()
	if err != nil {
		return err
	}

	user, err := r.api.UpdateProfile(ctx, cmd.String("name"))
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	token, _ := st.Token()
	if err := st.SaveSession(token, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlain("✓ Name updated to %s\n", user.Name)
	return nil
}

// DeleteAccount permanently removes the account and wipes local state,
// liked songs included.
func (r *Runner) DeleteAccount(ctx context.Context, cmd *cli.Command) error {
	st, err := r.session()
	if err != nil {
		return err
	}

	if err := r.api.DeleteAccount(ctx, cmd.String("password")); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}

	if err := st.ClearAccount(); err != nil {
		return fmt.Errorf("failed to clear local state: %w", err)
	}

	r.writePlain("✓ Account deleted\n")
	return nil
}
