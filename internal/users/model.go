package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walterobrien/authsim/internal/cryptox"
	"github.com/walterobrien/authsim/internal/shared"
	"github.com/walterobrien/authsim/internal/validation"
)

// TimeLayout is the textual timestamp format used in the backing file,
// e.g. "09 June 2024 : 12:53:44".
const TimeLayout = "02 January 2006 : 15:04:05"

// User is the in-memory representation of one account.
//
// The password is write-only: SetPassword validates and stores a hash, and
// there is no accessor for it. CheckPassword is the only way to use it.
type User struct {
	id           string
	email        string
	name         string
	passwordHash string
	loggedIn     bool
	createdAt    time.Time
	updatedAt    time.Time // zero until the first mutation
}

// New constructs a fresh account with a generated id and CreatedAt set to the
// current time. The email must be well-formed; the name is free text.
func New(email string, name string) (*User, error) {
	email, err := validation.Email(email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:        uuid.NewString(),
		email:     email,
		name:      name,
		createdAt: time.Now().UTC(),
	}, nil
}

// Restore rebuilds an entity from its stored form. An empty id generates a
// new one; a non-empty id must parse as a UUID. Timestamps are given in
// TimeLayout form; an empty createdAt defaults to the current time and an
// empty updatedAt means the record was never updated.
func Restore(email, name, id, createdAt, updatedAt string) (*User, error) {
	u, err := New(email, name)
	if err != nil {
		return nil, err
	}

	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%w: %q", shared.ErrInvalidID, id)
		}
		u.id = id
	}

	if createdAt != "" {
		t, err := time.Parse(TimeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", shared.ErrInvalidTimestamp, createdAt)
		}
		u.createdAt = t
	}

	if updatedAt != "" {
		t, err := time.Parse(TimeLayout, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", shared.ErrInvalidTimestamp, updatedAt)
		}
		u.updatedAt = t
	}

	return u, nil
}

func (u *User) ID() string           { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) IsLoggedIn() bool     { return u.loggedIn }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the time of the last mutation, or the zero time if the
// account has never been updated.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetEmail replaces the address after re-validating it.
func (u *User) SetEmail(email string) error {
	email, err := validation.Email(email)
	if err != nil {
		return err
	}
	u.email = email
	return nil
}

// SetName replaces the display name. No format constraint applies.
func (u *User) SetName(name string) {
	u.name = name
}

// SetPassword validates the plaintext against the complexity rules and stores
// only its hash. The plaintext is never retained.
func (u *User) SetPassword(password string) error {
	password, err := validation.Password(password)
	if err != nil {
		return err
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}
	u.passwordHash = hash
	return nil
}

// CheckPassword reports whether the candidate matches the stored hash.
func (u *User) CheckPassword(candidate string) bool {
	return cryptox.VerifyPassword(candidate, u.passwordHash)
}

// SetLoggedIn flips the session flag.
func (u *User) SetLoggedIn(v bool) {
	u.loggedIn = v
}

// Touch marks the entity as mutated now.
func (u *User) Touch() {
	u.updatedAt = time.Now().UTC()
}

// Record returns the full storage projection, including the password hash.
// It exists for persistence only; display code must use PublicView.
func (u *User) Record() Record {
	return Record{
		ID:        u.id,
		Email:     u.email,
		Name:      u.name,
		Password:  u.passwordHash,
		CreatedAt: u.createdAt.Format(TimeLayout),
		UpdatedAt: formatOptional(u.updatedAt),
		LoggedIn:  u.loggedIn,
	}
}

// PublicView returns the projection shown to end users. It never carries the
// password hash.
func (u *User) PublicView() Profile {
	return Profile{
		ID:        u.id,
		Email:     u.email,
		Name:      u.name,
		LoggedIn:  u.loggedIn,
		CreatedAt: u.createdAt.Format(TimeLayout),
		UpdatedAt: formatOptional(u.updatedAt),
	}
}

// Equal reports identity equality: two entities are the same account when
// their ids match, regardless of field contents.
func (u *User) Equal(other *User) bool {
	if other == nil {
		return false
	}
	return u.id == other.id
}

func (u *User) String() string {
	return fmt.Sprintf("User: %s <%s>", u.name, u.email)
}

func formatOptional(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}
