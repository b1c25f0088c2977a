package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walterobrien/authsim/internal/shared"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	repo, err := NewCSVRepository(path)
	require.NoError(t, err)
	return NewService(repo), path
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()
	svc, path := newTestService(t)

	u, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)

	assert.Len(t, u.ID(), 36)
	assert.False(t, u.IsLoggedIn())
	assert.True(t, u.CheckPassword("Password1"))

	// every mutating call persists immediately
	reloaded, err := NewCSVRepository(path)
	require.NoError(t, err)
	got, _ := reloaded.Get(ctx, u.ID())
	require.NotNil(t, got)
	assert.Equal(t, "abc@x.yz", got.Email())
}

func TestCreateAccount_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		email    string
		userName string
		password string
		wantErr  error
	}{
		{name: "empty email", email: "", userName: "A B", password: "Password1", wantErr: shared.ErrInvalidArgument},
		{name: "empty name", email: "abc@x.yz", userName: "", password: "Password1", wantErr: shared.ErrInvalidArgument},
		{name: "empty password", email: "abc@x.yz", userName: "A B", password: "", wantErr: shared.ErrInvalidArgument},
		{name: "malformed email", email: "1abc@x.yz", userName: "A B", password: "Password1", wantErr: shared.ErrInvalidEmail},
		{name: "weak password", email: "abc@x.yz", userName: "A B", password: "password", wantErr: shared.ErrPasswordTooShort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateAccount(ctx, tc.email, tc.userName, tc.password)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, "abc@x.yz", "C D", "Password2")
	require.ErrorIs(t, err, shared.ErrDuplicateEmail)
}

// The scenario from the account lifecycle: create, login, wrong password,
// logout.
func TestLoginLogout_StateMachine(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)
	assert.False(t, created.IsLoggedIn())

	loggedIn, err := svc.Login(ctx, "abc@x.yz", "Password1")
	require.NoError(t, err)
	assert.True(t, loggedIn.IsLoggedIn())
	assert.True(t, created.Equal(loggedIn))
	loginStamp := loggedIn.UpdatedAt()
	assert.False(t, loginStamp.IsZero(), "login refreshes updated_at")

	_, err = svc.Login(ctx, "abc@x.yz", "wrong")
	require.ErrorIs(t, err, shared.ErrWrongPassword)
	unchanged := svc.GetAccount(ctx, created.ID())
	require.NotNil(t, unchanged)
	assert.True(t, unchanged.IsLoggedIn(), "a failed login leaves state unchanged")

	loggedOut, err := svc.Logout(ctx, loggedIn)
	require.NoError(t, err)
	assert.False(t, loggedOut.IsLoggedIn())
	assert.False(t, loggedOut.UpdatedAt().Before(loginStamp), "logout refreshes updated_at")
}

func TestLogin_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Login(ctx, "", "Password1")
	require.ErrorIs(t, err, shared.ErrInvalidArgument)

	_, err = svc.Login(ctx, "abc@x.yz", "Password1")
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLogout_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Logout(ctx, nil)
	require.ErrorIs(t, err, shared.ErrInvalidArgument)

	u, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)

	_, err = svc.Logout(ctx, u)
	require.ErrorIs(t, err, shared.ErrAlreadyLoggedOut)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	u, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID(), map[string]any{"name": "Ebenezer Doe"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ebenezer Doe", updated.Name())

	missing, err := svc.UpdateProfile(ctx, "a9e80d13-f3c5-4b93-989b-1c5c39bdef3e", map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUpdateProfile_PasswordIsHashed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	u, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(ctx, u.ID(), map[string]any{"password": "weak"})
	require.ErrorIs(t, err, shared.ErrPasswordTooShort)

	updated, err := svc.UpdateProfile(ctx, u.ID(), map[string]any{"password": "Password2"})
	require.NoError(t, err)

	assert.True(t, updated.CheckPassword("Password2"))
	assert.False(t, updated.CheckPassword("Password1"))
	assert.NotEqual(t, "Password2", updated.Record().Password, "the store never sees the plaintext")
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	u, err := svc.CreateAccount(ctx, "abc@x.yz", "A B", "Password1")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, u.ID()))
	assert.Nil(t, svc.GetAccount(ctx, u.ID()))

	err = svc.DeleteAccount(ctx, u.ID())
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	assert.Empty(t, svc.ListAccounts(ctx))

	_, err := svc.CreateAccount(ctx, "a1@x.yz", "A", "Password1")
	require.NoError(t, err)
	_, err = svc.CreateAccount(ctx, "b2@x.yz", "B", "Password1")
	require.NoError(t, err)

	all := svc.ListAccounts(ctx)
	assert.Len(t, all, 2)
}
