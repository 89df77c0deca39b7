package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/helpers"
	"go-food-ordering/models"
	"go-food-ordering/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const badCredentials = "email or password is incorrect"

type SignupInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type LoginResult struct {
	Token    string             `json:"token"`
	User     models.UserProfile `json:"user"`
	Redirect string             `json:"redirect"`
}

type AuthService struct {
	credentials repository.CredentialRepository
	users       repository.UserRepository
	sessions    repository.SessionRepository
	tokens      *helpers.TokenMaker
	validate    *validator.Validate
	log         *zap.Logger
	now         func() time.Time
}

func NewAuthService(credentials repository.CredentialRepository, users repository.UserRepository, sessions repository.SessionRepository, tokens *helpers.TokenMaker, log *zap.Logger) *AuthService {
	return &AuthService{
		credentials: credentials,
		users:       users,
		sessions:    sessions,
		tokens:      tokens,
		validate:    newValidator(),
		log:         log,
		now:         time.Now,
	}
}

// Login checks the password, then loads the profile to decide where the user
// lands. A credential without a profile is RoleMissing.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	cred, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Auth(badCredentials, nil)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Auth(badCredentials, nil)
	}

	profile, err := s.users.Get(ctx, cred.UID())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrRoleMissing
		}
		return nil, err
	}
	if profile.Role == "" {
		return nil, apperrors.ErrRoleMissing
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, cred.UID(), s.tokens.TTL()); err != nil {
		return nil, err
	}
	token, err := s.tokens.GenerateToken(cred.Email, profile.DisplayName(), cred.UID(), string(profile.Role), sessionID)
	if err != nil {
		return nil, apperrors.Internal("could not issue token", err)
	}

	redirect := CustomerHome
	if profile.IsAdmin() {
		redirect = AdminHome
	}
	s.log.Info("user logged in", zap.String("uid", cred.UID()), zap.String("role", string(profile.Role)))
	return &LoginResult{Token: token, User: *profile, Redirect: redirect}, nil
}

// Signup creates the credential and a profile with role user. It does not
// sign the user in.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*models.UserProfile, error) {
	if in.Password != in.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal("failed to hash password", err)
	}
	now := s.now().UTC()
	cred := &models.Credential{Email: in.Email, PasswordHash: string(hash), CreatedAt: now}
	if err := s.credentials.Create(ctx, cred); err != nil {
		return nil, err
	}

	profile := &models.UserProfile{
		ID:        cred.UID(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     cred.Email,
		Phone:     strings.TrimSpace(in.Phone),
		Role:      models.RoleUser,
		CreatedAt: now,
	}
	if err := s.users.Create(ctx, profile); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("uid", profile.ID))
	return profile, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string, confirmed bool) (string, error) {
	if err := requireConfirmation(confirmed, "Logout"); err != nil {
		return "", err
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return "", err
	}
	return EntryPage, nil
}

// Authenticate resolves a token to its claims, rejecting tokens whose session
// has been signed out.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*helpers.SignedDetails, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, apperrors.New(apperrors.KindNotAuthenticated, "Please login to continue", err)
	}
	ok, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrNotAuthenticated
	}
	return claims, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, uid string) (*models.UserProfile, error) {
	return s.users.Get(ctx, uid)
}
