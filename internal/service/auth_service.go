package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"corpdesk/internal/auth"
	"corpdesk/internal/cache"
	apperrors "corpdesk/internal/errors"
	"corpdesk/internal/identity"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the validated registration fields.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Gender   string
	MobileNo string
}

// AuthService coordinates user creation across the credential store and the
// external identity provider, and owns the two verification flags.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (user *model.User, identityUID string, err error)
	Login(ctx context.Context, email, password, identityToken string) (token string, user *model.User, err error)
	VerifyEmail(ctx context.Context, userID uint) (*model.User, error)
	VerifyMobile(ctx context.Context, userID uint, identityToken string) (*model.User, error)
	VerifyProviderToken(ctx context.Context, identityToken string) (*identity.IDToken, error)
}

type authService struct {
	userRepo   repository.UserRepository
	provider   identity.Provider
	jwtService *auth.JWTService
	cache      *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, provider identity.Provider, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		userRepo:   userRepo,
		provider:   provider,
		jwtService: jwtService,
		cache:      cache,
	}
}

// Register creates a user in the identity provider and the credential store.
// The provider record is created first; if the local insert then fails, the
// provider record is deleted again so no orphaned external identity survives.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	email := normalizeEmail(input.Email)

	// Existence pre-checks. Advisory only: the unique constraints on the users
	// table remain the final arbiter for racing registrations.
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check email existence: %w", err)
	}

	if existing, err := s.userRepo.FindByMobile(ctx, input.MobileNo); err == nil && existing != nil {
		return nil, "", apperrors.ErrMobileTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check mobile existence: %w", err)
	}

	identityUID, err := s.provider.CreateUser(ctx, email, input.Password, input.FullName, input.MobileNo)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamIdentity, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		// Nothing local written yet; undo the provider record.
		s.compensateIdentity(ctx, identityUID)
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
		Gender:       input.Gender,
		MobileNo:     input.MobileNo,
		SignupType:   model.SignupTypeEmail,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.compensateIdentity(ctx, identityUID)
		switch column, ok := repository.UniqueViolationColumn(err); {
		case ok && column == "email":
			return nil, "", apperrors.ErrEmailTaken
		case ok && column == "mobile_no":
			return nil, "", apperrors.ErrMobileTaken
		default:
			return nil, "", fmt.Errorf("create user: %w", err)
		}
	}

	// Best-effort side channel. A failure here must not undo the registration.
	if _, err := s.provider.EmailVerificationLink(ctx, email); err != nil {
		log.Printf("email verification link for user %d: %v", user.ID, err)
	}

	return user, identityUID, nil
}

// compensateIdentity deletes a provider record created during a registration
// that could not be completed locally.
func (s *authService) compensateIdentity(ctx context.Context, identityUID string) {
	if err := s.provider.DeleteUser(ctx, identityUID); err != nil {
		log.Printf("compensating identity delete %s: %v", identityUID, err)
	}
}

// Login verifies the provider ID token against the supplied email, then the
// local password hash, and issues a session token. Unknown email and wrong
// password fail with the same error so accounts cannot be enumerated.
func (s *authService) Login(ctx context.Context, email, password, identityToken string) (string, *model.User, error) {
	email = normalizeEmail(email)

	decoded, err := s.provider.VerifyIDToken(ctx, identityToken)
	if err != nil {
		return "", nil, apperrors.ErrInvalidIdentityToken
	}
	if !strings.EqualFold(decoded.Email, email) {
		return "", nil, apperrors.ErrInvalidIdentityToken
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	return token, user, nil
}

// VerifyEmail flips the email verification flag. Re-verifying is rejected.
func (s *authService) VerifyEmail(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.IsEmailVerified {
		return nil, apperrors.ErrEmailAlreadyVerified
	}

	if err := s.userRepo.UpdateVerificationFlag(ctx, userID, model.ChannelEmail, true); err != nil {
		return nil, fmt.Errorf("update email verification: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(userID))

	user.IsEmailVerified = true
	return user, nil
}

// VerifyMobile validates the provider token, then flips the mobile flag.
// Any provider-side failure collapses into one uniform error class.
func (s *authService) VerifyMobile(ctx context.Context, userID uint, identityToken string) (*model.User, error) {
	if _, err := s.provider.VerifyIDToken(ctx, identityToken); err != nil {
		return nil, apperrors.ErrInvalidVerificationToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.IsMobileVerified {
		return nil, apperrors.ErrMobileAlreadyVerified
	}

	if err := s.userRepo.UpdateVerificationFlag(ctx, userID, model.ChannelMobile, true); err != nil {
		return nil, fmt.Errorf("update mobile verification: %w", err)
	}
	_ = s.cache.Delete(ctx, userCacheKey(userID))

	user.IsMobileVerified = true
	return user, nil
}

// VerifyProviderToken decodes a provider ID token for the client.
func (s *authService) VerifyProviderToken(ctx context.Context, identityToken string) (*identity.IDToken, error) {
	decoded, err := s.provider.VerifyIDToken(ctx, identityToken)
	if err != nil {
		return nil, apperrors.ErrInvalidIdentityToken
	}
	return decoded, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
