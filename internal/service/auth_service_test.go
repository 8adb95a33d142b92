package service

import (
	"context"
	"testing"

	"smart-kitchen-be/internal/dto"
	"smart-kitchen-be/internal/entity"
	"smart-kitchen-be/internal/pkg/apperror"
	"smart-kitchen-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (IAuthService, IMemberService, *memory.SessionRegistry) {
	t.Helper()
	factory := newFakeRepositoryFactory()
	members := NewMemberService(factory)
	sessions := memory.NewSessionRegistry()
	auth := NewAuthService(members, sessions, nil, nopLogger{})
	return auth, members, sessions
}

func TestLoginDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions a first-time member with defaults", func(t *testing.T) {
		auth, _, sessions := newAuthFixture(t)

		res, err := auth.LoginDirect(ctx, &dto.LoginRequest{Isic: "S1234567890"})
		require.NoError(t, err)

		assert.Equal(t, "S1234567890", res.Member.Isic)
		assert.Equal(t, "User 7890", res.Member.Name)
		assert.Equal(t, "pink", res.Member.ThemePalette)
		assert.False(t, res.Member.ThemeDarkMode)
		assert.False(t, res.Member.FaceEnrolled)

		isic, ok := sessions.Resolve(res.Token)
		require.True(t, ok)
		assert.Equal(t, "S1234567890", isic)
	})

	t.Run("keeps an existing member's profile", func(t *testing.T) {
		auth, members, _ := newAuthFixture(t)

		first, err := auth.LoginDirect(ctx, &dto.LoginRequest{Isic: "S1234567890"})
		require.NoError(t, err)

		_, err = members.UpdateTheme(ctx, "S1234567890", &dto.UpdateThemeRequest{
			ThemePalette:  "blue",
			ThemeDarkMode: true,
		})
		require.NoError(t, err)

		second, err := auth.LoginDirect(ctx, &dto.LoginRequest{Isic: "S1234567890"})
		require.NoError(t, err)

		assert.Equal(t, "blue", second.Member.ThemePalette)
		assert.True(t, second.Member.ThemeDarkMode)
		assert.NotEqual(t, first.Token, second.Token, "each login issues a fresh token")
	})
}

func TestUpdateTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the new palette", func(t *testing.T) {
		_, members, _ := newAuthFixture(t)

		_, err := members.GetOrCreate(ctx, "S1234567890")
		require.NoError(t, err)

		updated, err := members.UpdateTheme(ctx, "S1234567890", &dto.UpdateThemeRequest{
			ThemePalette:  "purple",
			ThemeDarkMode: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "purple", updated.ThemePalette)
		assert.True(t, updated.ThemeDarkMode)
	})

	t.Run("reports an unknown member", func(t *testing.T) {
		_, members, _ := newAuthFixture(t)

		_, err := members.UpdateTheme(ctx, "S9999999999", &dto.UpdateThemeRequest{ThemePalette: "green"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "User 7890", entity.DefaultName("S1234567890"))
	assert.Equal(t, "User 0001", entity.DefaultName("S0000000001"))
}
