package users

import (
	"context"
	"fmt"

	"github.com/walterobrien/authsim/internal/cryptox"
	"github.com/walterobrien/authsim/internal/shared"
	"github.com/walterobrien/authsim/internal/validation"
)

// Service orchestrates account lifecycle operations on top of a Repository.
// Every mutating method persists the whole collection via Save immediately
// after the in-memory change.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAccount validates the inputs, constructs an entity with a hashed
// password, adds it to the store and persists.
func (s *Service) CreateAccount(ctx context.Context, email, name, password string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", shared.ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrInvalidArgument)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", shared.ErrInvalidArgument)
	}

	user, err := New(email, name)
	if err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	user, err = s.repo.Add(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials for the account with the given email and
// flips its session flag on. A wrong password leaves all state unchanged.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", shared.ErrInvalidArgument)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: no account for %s", shared.ErrNotFound, email)
	}

	if !user.CheckPassword(password) {
		return nil, shared.ErrWrongPassword
	}

	user, err = s.repo.Update(ctx, user.ID(), map[string]any{"is_logged_in": true})
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout flips the session flag off. Logging out an account that is not
// logged in is an error, not a no-op.
func (s *Service) Logout(ctx context.Context, user *User) (*User, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is nil", shared.ErrInvalidArgument)
	}
	if !user.IsLoggedIn() {
		return nil, shared.ErrAlreadyLoggedOut
	}

	updated, err := s.repo.Update(ctx, user.ID(), map[string]any{"is_logged_in": false})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: no account with id %s", shared.ErrNotFound, user.ID())
	}
	if err := s.repo.Save(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateProfile overwrites the mutable fields of the account with the given
// id and persists. A plaintext "password" value is validated and hashed here
// so the repository only ever sees the hash. An unknown id yields (nil, nil).
func (s *Service) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*User, error) {
	if pw, ok := fields["password"]; ok && pw != nil {
		plaintext, ok := pw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: password must be a string", shared.ErrInvalidArgument)
		}
		if _, err := validation.Password(plaintext); err != nil {
			return nil, err
		}
		hash, err := cryptox.HashPassword(plaintext)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	user, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := s.repo.Save(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the account with the given id and persists.
func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.repo.Save(ctx)
}

// ListAccounts returns all stored accounts.
func (s *Service) ListAccounts(ctx context.Context) []*User {
	result := []*User{}
	for u := range s.repo.All(ctx) {
		result = append(result, u)
	}
	return result
}

// GetAccount returns the account with the given id, or nil when absent.
func (s *Service) GetAccount(ctx context.Context, id string) *User {
	u, _ := s.repo.Get(ctx, id)
	return u
}
