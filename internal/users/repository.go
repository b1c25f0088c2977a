package users

import (
	"context"
	"iter"
)

// Repository describes CRUD and query operations over the account collection
// and its file mirror.
//
// Lookup misses on Get, GetByEmail and Update are reported as nil results,
// not errors: absence is an expected branch there. Delete is the exception
// and fails with shared.ErrNotFound.
type Repository interface {
	// Add appends a new account. It fails with shared.ErrDuplicateID or
	// shared.ErrDuplicateEmail when a stored record already uses the same
	// id or email.
	Add(ctx context.Context, user *User) (*User, error)

	// Update overwrites the mutable fields of the record with the given id
	// from the non-nil values in fields and refreshes its updated_at.
	// Recognized keys are "email", "name", "password" (an already-hashed
	// string) and "is_logged_in"; unknown keys are ignored. A missing id
	// yields (nil, nil).
	Update(ctx context.Context, id string, fields map[string]any) (*User, error)

	// Get returns the reconstructed entity together with its backing record
	// for in-place inspection, or (nil, nil) when the id is unknown.
	Get(ctx context.Context, id string) (*User, *Record)

	// GetByEmail scans for a record by exact email match.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Delete removes the record with the given id, failing with
	// shared.ErrNotFound when it does not exist.
	Delete(ctx context.Context, id string) error

	// All returns a restartable sequence lazily reconstructing every stored
	// account from a snapshot of the collection.
	All(ctx context.Context) iter.Seq[*User]

	// Save fully rewrites the backing file from the in-memory collection.
	Save(ctx context.Context) error
}
