package auth

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"learnhub/be/internal/config"
	"learnhub/be/internal/user"
)

type fakeUserService struct {
	users map[string]user.User
}

func (f *fakeUserService) Register(_ context.Context, _ user.RegisterRequest) error {
	return nil
}

func (f *fakeUserService) GetByUsername(_ context.Context, username string) (user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return user.User{}, sql.ErrNoRows
	}
	return u, nil
}

func newAuthService(t *testing.T) *ServiceImpl {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserService{users: map[string]user.User{
		"alice": {ID: 7, Username: "alice", Password: string(hashed)},
	}}
	return NewServiceImpl(users, config.JWTConfig{SecretKey: "test-secret", Expiry: time.Hour})
}

func TestLoginAndVerify(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "bob", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyGarbageToken(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenSignedWithOtherKey(t *testing.T) {
	svc := newAuthService(t)
	other := NewServiceImpl(&fakeUserService{}, config.JWTConfig{SecretKey: "other-secret", Expiry: time.Hour})

	token, err := other.generateToken(1, "mallory")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
