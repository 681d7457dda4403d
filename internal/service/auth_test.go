package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository"
)

type fakeUserRepo struct {
	users map[string]domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return domain.User{}, repository.ErrUserEmailExists
	}
	user.ID = uint(len(f.users) + 1)
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserRepo{users: map[string]domain.User{}})

	created, err := svc.Signup(ctx, domain.User{
		Email:    "streamer@example.com",
		Password: "hunter2hunter2",
		Name:     "Streamer",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "hunter2hunter2", created.Password, "password must be stored hashed")

	user, err := svc.Login(ctx, "streamer@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserRepo{users: map[string]domain.User{}})

	_, err := svc.Signup(ctx, domain.User{Email: "streamer@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.User{Email: "streamer@example.com", Password: "hunter2hunter2"})
	require.ErrorIs(t, err, ErrUserEmailExists)
}

func TestAuthService_Login_Failures(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(&fakeUserRepo{users: map[string]domain.User{}})

	_, err := svc.Signup(ctx, domain.User{Email: "streamer@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "streamer@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	require.ErrorIs(t, err, ErrUserNotFound)
}
