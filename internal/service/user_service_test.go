package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navneetmaurya-hub/WonderLust/internal/service"
	"github.com/navneetmaurya-hub/WonderLust/internal/service/servicetest"
)

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the password", func(t *testing.T) {
		users := servicetest.NewUserStore()
		svc := service.NewUserService(users)

		u, err := svc.Register(ctx, "ana", "a@x.com", "pw")
		require.NoError(t, err)
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "pw", u.PasswordHash)
	})

	t.Run("duplicate username leaves no new record", func(t *testing.T) {
		users := servicetest.NewUserStore()
		svc := service.NewUserService(users)

		_, err := svc.Register(ctx, "ana", "a@x.com", "pw")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "ana", "other@x.com", "pw2")
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
		assert.Equal(t, 1, users.Len())
	})
}

func TestUserAuthenticate(t *testing.T) {
	ctx := context.Background()
	users := servicetest.NewUserStore()
	svc := service.NewUserService(users)

	registered, err := svc.Register(ctx, "ana", "a@x.com", "pw")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "ana", "pw")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ana", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown username looks the same", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ghost", "pw")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
