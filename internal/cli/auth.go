package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdnguyen/luxauto/internal/common"
	"github.com/tdnguyen/luxauto/internal/users"
	"github.com/tdnguyen/luxauto/internal/validate"
)

// printErr renders service errors for the terminal. Validation problems
// come out as their message alone; anything else keeps the full chain.
func (a *App) printErr(err error) {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintf(a.out, "Error: %s\n", ve.Message)
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err)
}

// Register walks the sign-up form: name, email, password with a live
// strength readout, and a confirmation entry that must match.
func (a *App) Register(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are already logged in")
		return
	}

	fullName, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Password strength: %s\n", validate.PasswordStrength(password))

	confirm, err := getPassword("Confirm password: ", a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if password != confirm {
		fmt.Fprintln(a.out, "Error: passwords do not match")
		return
	}

	user, err := a.users.Register(ctx, fullName, email, password)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", user.Email)
}

// Login signs the user in. A remembered email is offered as the default,
// and a successful login asks whether to remember the address for next time.
func (a *App) Login(ctx context.Context) {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are already logged in")
		return
	}

	prompt := "Email"
	remembered, hasRemembered := a.sessions.RememberedEmail(ctx)
	if hasRemembered {
		prompt = fmt.Sprintf("Email [%s]", remembered)
	}
	email, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return
	}
	if email == "" && hasRemembered {
		email = remembered
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	p, err := a.users.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Error: incorrect email or password")
		} else {
			a.printErr(err)
		}
		return
	}
	a.principal = p
	fmt.Fprintf(a.out, "Welcome back, %s!\n", p.FullName)

	remember, err := GetYesNo(a.reader, "Remember this email?", a.out)
	if err != nil {
		return
	}
	if remember {
		if err := a.sessions.Remember(ctx, p.Email); err != nil {
			a.log.Warn(ctx, "could not remember email", "error", err)
		}
	} else if err := a.sessions.Forget(ctx); err != nil {
		a.log.Warn(ctx, "could not forget email", "error", err)
	}
}

// Logout ends the session. The remembered email is left alone.
func (a *App) Logout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in")
		return
	}
	if err := a.users.Logout(ctx); err != nil {
		a.printErr(err)
		return
	}
	a.principal = nil
	fmt.Fprintln(a.out, "Logged out")
}

// Profile prints the account details and offers an edit pass. Empty
// answers keep the current values.
func (a *App) Profile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	profile, err := a.users.Profile(ctx, a.principal.ID)
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "Name:    %s\n", profile.FullName)
	fmt.Fprintf(a.out, "Email:   %s\n", profile.Email)
	fmt.Fprintf(a.out, "Member since: %s\n", formatDate(profile.CreatedAt))
	if profile.UpdatedAt != "" {
		fmt.Fprintf(a.out, "Updated: %s\n", formatDate(profile.UpdatedAt))
	}

	edit, err := GetYesNo(a.reader, "Update profile?", a.out)
	if err != nil || !edit {
		return
	}

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Full name [%s]", profile.FullName), a.out)
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, fmt.Sprintf("Email [%s]", profile.Email), a.out)
	if err != nil {
		return
	}

	var upd users.ProfileUpdate
	if name != "" {
		if validate.Length(name) < validate.MinFullNameLen {
			fmt.Fprintf(a.out, "Error: full name must be at least %d characters\n", validate.MinFullNameLen)
			return
		}
		upd.FullName = &name
	}
	if email != "" {
		if !validate.Email(users.NormalizeEmail(email)) {
			fmt.Fprintln(a.out, "Error: please enter a valid email address")
			return
		}
		upd.Email = &email
	}
	if upd.FullName == nil && upd.Email == nil {
		fmt.Fprintln(a.out, "Nothing to change")
		return
	}

	if err := a.users.UpdateProfile(ctx, a.principal.ID, upd); err != nil {
		a.printErr(err)
		return
	}

	p, err := a.sessions.Current(ctx)
	if err == nil && p != nil {
		a.principal = p
	}
	fmt.Fprintln(a.out, "Profile updated")
}
