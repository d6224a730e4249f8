package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/statusvillain/statusvillain/internal/credentials"
	"github.com/statusvillain/statusvillain/internal/services"
)

// getSimpleText, getPassword, getConfirm and getMultiline are indirections
// used to facilitate testing. They point to the interactive input helpers
// and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
	getMultiline  = GetMultiline
)

// Init runs the first-time setup flow: collects the user profile, creates
// the account, and persists the credential file so later sessions skip the
// interactive login.
func (a *App) Init(ctx context.Context) error {
	return a.runFlow(ctx, a.initFlow)
}

func (a *App) initFlow(ctx context.Context) error {
	fmt.Fprintln(a.out, "Let's get you started with creating your user profile.")

	email, err := getSimpleText(ctx, a.reader, "Please provide your email address", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(ctx, a.reader, "What is your first name?", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(ctx, a.reader, "What is your last name?", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(ctx, a.reader, "Choose your user name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(ctx, "Choose your password. Make it hard to guess", a.out)
	if err != nil {
		return err
	}

	id, err := a.accounts.Register(ctx, email, username, firstName, lastName, password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateAccount) {
			fmt.Fprintln(a.out, "An account already exists under that email address. Please log in.")
			return nil
		}
		return err
	}
	a.log.Info(ctx, "account created", "id", id, "email", email)

	creds := &credentials.Credentials{
		Email:     email,
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := a.persistCredentials(ctx, creds); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "You're all set.")
	return nil
}

// persistCredentials writes the credential file, asking for confirmation
// before clobbering an existing one. A declined overwrite is a hard stop:
// the user has to update the file manually.
func (a *App) persistCredentials(ctx context.Context, creds *credentials.Credentials) error {
	err := a.creds.Save(creds, false)
	if err == nil {
		return nil
	}
	if !errors.Is(err, credentials.ErrAlreadyPopulated) {
		return err
	}

	overwrite, err := getConfirm(ctx, a.reader,
		fmt.Sprintf("A credentials file already exists at %s. Do you want to overwrite it?", a.creds.Path()), a.out)
	if err != nil {
		return err
	}
	if !overwrite {
		return fmt.Errorf("%w at %s: update it with your new credentials if they have changed",
			credentials.ErrAlreadyPopulated, a.creds.Path())
	}
	return a.creds.Save(creds, true)
}
