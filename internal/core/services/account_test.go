package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorwise/tutorwise-cli/internal/core/domain"
)

func TestAccountService_Login(t *testing.T) {
	backend := &fakeBackend{
		loginSess: domain.Session{Token: "t1", UserID: "u1", FullName: "Ann", Email: "a@x.com"},
	}
	store := newSessionStore(t)
	svc := NewAccountService(backend, store)

	sess, err := svc.Login(context.Background(), "a@x.com", "pw")

	require.NoError(t, err)
	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "t1", sess.Token)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, map[string]string{"Authorization": "Bearer t1"}, store.AuthHeader())
}

func TestAccountService_Login_EmptyInput(t *testing.T) {
	svc := NewAccountService(&fakeBackend{}, newSessionStore(t))

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Login(context.Background(), "a@x.com", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.False(t, svc.IsAuthenticated())
}

func TestAccountService_Login_BackendFailure(t *testing.T) {
	backend := &fakeBackend{
		loginErr: &domain.APIError{Message: "Invalid email or password", Status: 401},
	}
	svc := NewAccountService(backend, newSessionStore(t))

	_, err := svc.Login(context.Background(), "a@x.com", "wrong")

	assert.True(t, domain.IsUnauthorized(err))
	assert.False(t, svc.IsAuthenticated())
}

func TestAccountService_Register_LogsIn(t *testing.T) {
	backend := &fakeBackend{
		loginSess: domain.Session{Token: "t1", UserID: "u1", Email: "a@x.com"},
	}
	svc := NewAccountService(backend, newSessionStore(t))

	sess, err := svc.Register(context.Background(), "a@x.com", "pw", "Ann")

	require.NoError(t, err)
	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, "t1", sess.Token)
}

func TestAccountService_Register_Failure(t *testing.T) {
	backend := &fakeBackend{
		registerErr: &domain.APIError{Message: "Email already registered", Status: 400},
	}
	svc := NewAccountService(backend, newSessionStore(t))

	_, err := svc.Register(context.Background(), "a@x.com", "pw", "Ann")

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Email already registered", apiErr.Message)
	assert.False(t, svc.IsAuthenticated())
}

func TestAccountService_LoginLogoutRoundTrip(t *testing.T) {
	backend := &fakeBackend{
		loginSess: domain.Session{Token: "t1", UserID: "u1", FullName: "Ann", Email: "a@x.com"},
	}
	svc := NewAccountService(backend, newSessionStore(t))

	_, err := svc.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	svc.Logout()

	assert.False(t, svc.IsAuthenticated())
	assert.True(t, svc.Current().IsZero())
}
