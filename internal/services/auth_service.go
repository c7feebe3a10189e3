package services

import (
	"context"

	"streamhub-backend/internal/auth"
	"streamhub-backend/internal/avatar"
	"streamhub-backend/internal/models"
	"streamhub-backend/internal/repository"
	"streamhub-backend/internal/validators"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	PasswordConf string `json:"password_conf" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	users  repository.UserRepository
	admins repository.AdminRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewAuthService(
	users repository.UserRepository,
	admins repository.AdminRepository,
	tokens *auth.TokenManager,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{users: users, admins: admins, tokens: tokens, logger: logger}
}

// RegisterUser creates the account with a generated avatar and returns a
// signed session token. Duplicate-email and field violations are reported
// together.
func (s *AuthService) RegisterUser(ctx context.Context, input RegisterInput) (*models.User, string, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", nil, err
	}
	if existing != nil {
		violations.AddWithValue("email", input.Email, "E-mail already in use")
	}

	if !violations.Empty() {
		return nil, "", violations, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", nil, err
	}

	userAvatar, err := avatar.Generate()
	if err != nil {
		return nil, "", nil, err
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Avatar:   userAvatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", nil, err
	}

	token, err := s.tokens.Generate(&auth.TokenClaims{
		UserID:       user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		IsSubscribed: user.IsSubscribed,
	})
	if err != nil {
		return nil, "", nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"userId": user.ID,
		"email":  user.Email,
	}).Info("User registered")

	return user, token, nil, nil
}

// LoginUser verifies the credentials. A missing account and a wrong
// password both surface as ErrWrongCredentials.
func (s *AuthService) LoginUser(ctx context.Context, input LoginInput) (*models.User, string, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)
	if !violations.Empty() {
		return nil, "", violations, nil
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", nil, err
	}
	if user == nil {
		return nil, "", nil, ErrWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", nil, ErrWrongCredentials
	}

	token, err := s.tokens.Generate(&auth.TokenClaims{
		UserID:       user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		IsSubscribed: user.IsSubscribed,
	})
	if err != nil {
		return nil, "", nil, err
	}

	s.logger.WithField("userId", user.ID).Info("User logged in")

	return user, token, nil, nil
}

func (s *AuthService) RegisterAdmin(ctx context.Context, input RegisterInput) (*models.Admin, string, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)

	existing, err := s.admins.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", nil, err
	}
	if existing != nil {
		violations.AddWithValue("email", input.Email, "E-mail already in use")
	}

	if !violations.Empty() {
		return nil, "", violations, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", nil, err
	}

	admin := &models.Admin{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, "", nil, err
	}

	token, err := s.tokens.Generate(&auth.TokenClaims{
		UserID:   admin.ID.String(),
		Email:    admin.Email,
		Username: admin.Username,
	})
	if err != nil {
		return nil, "", nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"adminId": admin.ID,
		"email":   admin.Email,
	}).Info("Admin registered")

	return admin, token, nil, nil
}

func (s *AuthService) LoginAdmin(ctx context.Context, input LoginInput) (*models.Admin, string, validators.Violations, error) {
	validators.Sanitize(&input)
	violations := validators.Check(input)
	if !violations.Empty() {
		return nil, "", violations, nil
	}

	admin, err := s.admins.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", nil, err
	}
	if admin == nil {
		return nil, "", nil, ErrWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		return nil, "", nil, ErrWrongCredentials
	}

	token, err := s.tokens.Generate(&auth.TokenClaims{
		UserID:   admin.ID.String(),
		Email:    admin.Email,
		Username: admin.Username,
	})
	if err != nil {
		return nil, "", nil, err
	}

	s.logger.WithField("adminId", admin.ID).Info("Admin logged in")

	return admin, token, nil, nil
}
