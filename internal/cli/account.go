package cli

import (
	"context"
	"fmt"

	"github.com/walterobrien/authsim/internal/users"
)

// createAccount collects email, full name and password and asks the service
// to create the account. Any failure is reported and the caller's menu loop
// continues.
func (a *App) createAccount(ctx context.Context) {
	fmt.Fprint(a.out, createForm)

	email, err := getSimpleText(a.reader, "Email: ", a.out)
	if err != nil {
		return
	}
	name, err := getSimpleText(a.reader, "Full name: ", a.out)
	if err != nil {
		return
	}
	password, err := getPassword("Password: ", a.out)
	if err != nil {
		return
	}

	user, err := a.service.CreateAccount(ctx, email, name, password)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to create user: %s\n", err)
		return
	}

	fmt.Fprintf(a.out, "User created successfully. Your user ID is %s\n", user.ID())
}

// login collects credentials and, on success, enters the session menu.
func (a *App) login(ctx context.Context) {
	fmt.Fprint(a.out, loginForm)

	email, err := getSimpleText(a.reader, "Email: ", a.out)
	if err != nil {
		return
	}
	password, err := getPassword("Password: ", a.out)
	if err != nil {
		return
	}

	user, err := a.service.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return
	}

	fmt.Fprintln(a.out, "Logged in successfully!")
	a.session(ctx, user)
}

// session runs the authenticated menu until the user logs out or input ends.
func (a *App) session(ctx context.Context, user *users.User) {
	for {
		fmt.Fprint(a.out, sessionMenu)

		choice, err := getSimpleText(a.reader, "> ", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.printProfile(user.PublicView())

		case "2":
			fmt.Fprintln(a.out, "You can only update your name.")
			name, err := getSimpleText(a.reader, "New name: ", a.out)
			if err != nil {
				return
			}
			if name == "" {
				continue
			}
			updated, err := a.service.UpdateProfile(ctx, user.ID(), map[string]any{"name": name})
			if err != nil {
				fmt.Fprintf(a.out, "Failed to update user: %s\n", err)
				continue
			}
			if updated == nil {
				fmt.Fprintln(a.out, "User no longer exists.")
				return
			}
			user = updated
			fmt.Fprintln(a.out, "User updated successfully.")
			a.printProfile(user.PublicView())

		case "3":
			updated, err := a.service.Logout(ctx, user)
			if err != nil {
				fmt.Fprintf(a.out, "Failed to logout: %s\n", err)
				return
			}
			fmt.Fprintf(a.out, "User %s logged out.\n", updated.ID())
			return

		default:
			fmt.Fprintln(a.out, "Invalid choice. Try again.")
		}
	}
}

func (a *App) printProfile(p users.Profile) {
	fmt.Fprintf(a.out, "ID:         %s\n", p.ID)
	fmt.Fprintf(a.out, "Email:      %s\n", p.Email)
	fmt.Fprintf(a.out, "Name:       %s\n", p.Name)
	fmt.Fprintf(a.out, "Logged in:  %t\n", p.LoggedIn)
	fmt.Fprintf(a.out, "Created at: %s\n", p.CreatedAt)
	if p.UpdatedAt != "" {
		fmt.Fprintf(a.out, "Updated at: %s\n", p.UpdatedAt)
	}
}
