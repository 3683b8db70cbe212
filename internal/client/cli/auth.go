package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/assessment/internal/client/authform"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/shell"
	"github.com/dmitrijs2005/assessment/internal/common"
)

// getText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getText = GetTextOrKeep
var getPassword = GetPassword

// Login opens the sign-in view in sign-in mode, prompts for the fields and
// submits. Field values typed earlier are offered as defaults.
func (a *App) Login(ctx context.Context) error {
	return a.submit(ctx, authform.SignIn)
}

// Signup is Login in sign-up mode; it also prompts for the names.
func (a *App) Signup(ctx context.Context) error {
	return a.submit(ctx, authform.SignUp)
}

// ToggleMode switches the form between sign-in and sign-up.
func (a *App) ToggleMode(ctx context.Context) error {
	a.openAuthView()
	mode := a.authForm().ToggleMode()
	a.logger.Debug(ctx, "form mode toggled", "mode", mode)
	a.render()
	return nil
}

// ShowPassword toggles whether the password is echoed and displayed.
func (a *App) ShowPassword(ctx context.Context) error {
	a.openAuthView()
	if a.authForm().TogglePasswordVisibility() {
		fmt.Fprintln(a.out, "Password will be shown.")
	} else {
		fmt.Fprintln(a.out, "Password will be hidden.")
	}
	return nil
}

// Logout ends the session through the shell and forgets the stored
// credential.
func (a *App) Logout(ctx context.Context) error {
	a.shell.Logout(ctx)
	a.forgetCredential(ctx)
	a.render()
	return nil
}

// Menu toggles the account menu, or activates item when one is given.
func (a *App) Menu(ctx context.Context, item string) error {
	if item == "" {
		a.shell.ToggleMenu()
		a.render()
		return nil
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in to use the menu.")
		return nil
	}
	if !a.shell.MenuOpen() {
		a.shell.ToggleMenu()
	}
	if err := a.shell.Activate(ctx, shell.Item(item)); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	if shell.Item(item) == shell.ItemLogout {
		a.forgetCredential(ctx)
	}
	a.render()
	return nil
}

func (a *App) openAuthView() {
	if a.router.Location().Path != routes.LoginPath {
		a.router.Navigate(routes.LoginPath)
	}
}

func (a *App) submit(ctx context.Context, mode authform.Mode) error {
	a.openAuthView()
	form := a.authForm()
	if form.State().Mode != mode {
		form.ToggleMode()
	}
	a.render()

	if err := a.promptFields(form); err != nil {
		return err
	}
	for _, is := range form.Validate() {
		if !is.Blocking {
			fmt.Fprintln(a.out, "Note:", is.Message)
		}
	}

	err := form.Submit(ctx)
	if err != nil {
		a.logger.Debug(ctx, "submit failed", "mode", mode, "error", err)
	}
	a.render()
	return err
}

func (a *App) promptFields(form *authform.Controller) error {
	st := form.State()
	if st.Mode == authform.SignUp {
		var names authform.Names
		if st.Names != nil {
			names = *st.Names
		}
		first, err := getText(a.reader, "Enter first name", names.First, a.out)
		if err != nil {
			return err
		}
		last, err := getText(a.reader, "Enter last name", names.Last, a.out)
		if err != nil {
			return err
		}
		if err := form.SetNames(first, last); err != nil {
			return err
		}
	}

	email, err := getText(a.reader, "Enter email", st.Email, a.out)
	if err != nil {
		return err
	}
	form.SetEmail(email)

	password, err := a.promptPassword(st)
	if err != nil {
		return err
	}
	form.SetPassword(password)
	return nil
}

// promptPassword echoes the input only when visibility is on. An empty
// answer keeps the password already in the form.
func (a *App) promptPassword(st authform.State) (string, error) {
	if st.ShowPassword {
		return getText(a.reader, "Enter password", st.Password, a.out)
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		return st.Password, nil
	}
	return string(pw), nil
}

func (a *App) forgetCredential(ctx context.Context) {
	if a.jar == nil {
		return
	}
	if err := a.jar.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "clearing stored credential", "error", err)
	}
}
