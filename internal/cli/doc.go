// Package cli provides the interactive account manager console.
//
// It wires configuration, the file-backed account store and the account
// service into a numbered-menu loop: create an account, log in, and, once
// authenticated, view the profile, rename the account or log out. Passwords
// are read without echo.
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
// Service errors are reported to the user without ending the session.
package cli
