package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(repo identity.UserRepository) (*UserService, *auth.JWTService, *auth.MemoryTokenBlacklist) {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "storefront-test",
	})
	blacklist := auth.NewMemoryTokenBlacklist()
	return NewUserService(repo, jwtService, blacklist), jwtService, blacklist
}

func testUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Alice Buyer", "alice@example.com", "secret123")
	require.NoError(t, err)
	return user
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer account with tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, jwtService, _ := newTestService(repo)

		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		resp, err := service.Register(ctx, RegisterRequest{
			Name:     "Alice Buyer",
			Email:    "Alice@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", resp.User.Email)
		assert.Equal(t, "customer", resp.User.Role)
		require.NotNil(t, resp.Tokens)

		claims, err := jwtService.ValidateAccessToken(resp.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "customer", claims.Role)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, _, _ := newTestService(repo)

		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

		_, err := service.Register(ctx, RegisterRequest{
			Name:     "Alice Buyer",
			Email:    "alice@example.com",
			Password: "secret123",
		})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("weak password is rejected before storage", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, _, _ := newTestService(repo)

		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)

		_, err := service.Register(ctx, RegisterRequest{
			Name:     "Alice Buyer",
			Email:    "alice@example.com",
			Password: "short",
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, _, _ := newTestService(repo)
		user := testUser(t)

		repo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

		resp, err := service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.NotEmpty(t, resp.Tokens.AccessToken)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, _, _ := newTestService(repo)
		user := testUser(t)

		repo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		_, wrongPassword := service.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong"})
		_, unknownEmail := service.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})

		require.Error(t, wrongPassword)
		require.Error(t, unknownEmail)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())

		var domainErr *shared.DomainError
		require.ErrorAs(t, wrongPassword, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestUserServiceRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, jwtService, blacklist := newTestService(repo)
		user := testUser(t)

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: user.ID, Email: user.Email, Name: user.Name, Role: string(user.Role),
		})
		require.NoError(t, err)

		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		resp, err := service.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)

		// The used refresh token is revoked and cannot be replayed.
		oldClaims, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		revoked, err := blacklist.IsBlacklisted(ctx, oldClaims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)

		_, err = service.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})
		require.Error(t, err)
	})

	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, jwtService, _ := newTestService(repo)
		user := testUser(t)

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID: user.ID, Email: user.Email, Name: user.Name, Role: string(user.Role),
		})
		require.NoError(t, err)

		_, err = service.Refresh(ctx, RefreshRequest{RefreshToken: pair.AccessToken})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestUserServiceLogout(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service, jwtService, blacklist := newTestService(repo)
	user := testUser(t)

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID, Email: user.Email, Name: user.Name, Role: string(user.Role),
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, claims))

	revoked, err := blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestUserServiceUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, _, _ := newTestService(repo)
		user := testUser(t)

		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("Save", ctx, user).Return(nil)

		name := "Alice Renamed"
		password := "newsecret456"
		resp, err := service.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Name: &name, Password: &password})
		require.NoError(t, err)

		assert.Equal(t, "Alice Renamed", resp.Name)
		assert.True(t, user.CheckPassword("newsecret456"))
		repo.AssertExpectations(t)
	})

	t.Run("invalid password aborts without saving", func(t *testing.T) {
		repo := new(MockUserRepository)
		service, _, _ := newTestService(repo)
		user := testUser(t)

		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		password := "short"
		_, err := service.UpdateProfile(ctx, user.ID, UpdateProfileRequest{Password: &password})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserServiceList(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service, _, _ := newTestService(repo)
	user := testUser(t)

	repo.On("FindAll", ctx).Return([]identity.User{*user}, nil)

	resp, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, user.Email, resp[0].Email)
}

func TestUserServiceProfileNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	service, _, _ := newTestService(repo)
	id := uuid.New()

	repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := service.Profile(ctx, id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
