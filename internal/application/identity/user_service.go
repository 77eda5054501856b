package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserService handles registration, authentication, and account management
type UserService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, jwtService *auth.JWTService, blacklist auth.TokenBlacklist) *UserService {
	return &UserService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// Register creates a new customer account and returns it with a token pair
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Name, email, req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login authenticates a user by email and password. Unknown email and
// wrong password both return the same unauthorized error so the response
// does not reveal which accounts exist.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		logger.L(ctx).Warn("login failed", zap.String("email", email))
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	return s.authResponse(user)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token is blacklisted for its remaining lifetime.
func (s *UserService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
		}
		return nil, err
	}

	if err := s.blacklist.Blacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Logout revokes an access token by blacklisting its JTI for the
// remaining token lifetime
func (s *UserService) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.blacklist.Blacklist(ctx, claims.ID, claims.GetRemainingTTL())
}

// Profile returns the account behind the given user ID
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies a partial update to the caller's own account
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := user.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Password != nil {
		if err := user.ChangePassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// List returns all registered users, for administrators
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}

// Get returns a single user by ID, for administrators
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	return s.Profile(ctx, id)
}

func (s *UserService) authResponse(user *identity.User) (*AuthResponse, error) {
	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   string(user.Role),
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:   toUserResponse(user),
		Tokens: tokens,
	}, nil
}
