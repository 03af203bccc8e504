package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/logger"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, phone, passwordHash string) (uuid.UUID, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, phone string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader    UserReader
	writer    UserWriter
	jwt       JWTGenerator
	validator *Validator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:    reader,
		writer:    writer,
		jwt:       jwt,
		validator: NewValidator(),
	}
}

type registration struct {
	Email    string `validate:"required,email"`
	Phone    string `validate:"bdphone"`
	Password string `validate:"min=6"`
}

// Register creates a new identity and returns its user id.
func (svc *AuthService) Register(ctx context.Context, email, phone, password string) (uuid.UUID, error) {
	email = normalizeEmail(email)
	phone = strings.TrimSpace(phone)

	if err := svc.validator.Struct(registration{Email: email, Phone: phone, Password: password}); err != nil {
		return uuid.Nil, err
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, email, phone, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Phone)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
