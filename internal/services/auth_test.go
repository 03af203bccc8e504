package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/invest-ledger/internal/models"
	"github.com/sbilibin2017/invest-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
	newID := uuid.New()

	tests := []struct {
		name         string
		email        string
		phone        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			phone:    "01712345678",
			password: "pass123",
		},
		{
			name:         "user already exists",
			email:        "bob@example.com",
			phone:        "01712345678",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			phone:     "01712345678",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			phone:     "01712345678",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.email, tt.phone, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, hash string) (uuid.UUID, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						if tt.writerErr != nil {
							return uuid.Nil, tt.writerErr
						}
						return newID, nil
					})
			}

			id, err := svc.Register(context.Background(), tt.email, tt.phone, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newID, id)
			}
		})
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	tests := []struct {
		name, email, phone, password, field string
	}{
		{"bad email", "not-an-email", "01712345678", "pass123", "email"},
		{"bad phone", "a@example.com", "123", "pass123", "phone"},
		{"short password", "a@example.com", "01712345678", "abc", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.phone, tt.password)

			var vErr *services.ValidationError
			if assert.ErrorAs(t, err, &vErr) {
				assert.Equal(t, tt.field, vErr.Field)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		email     string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		expectJWT string
		loginPass string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", Phone: "01712345678", PasswordHash: string(hashed)},
			expectJWT: "token123",
			loginPass: password,
		},
		{
			name:      "user does not exist",
			email:     "bob@example.com",
			wantErr:   services.ErrUserDoesNotExist,
			loginPass: password,
		},
		{
			name:      "invalid password",
			email:     "carol@example.com",
			user:      &models.UserDB{UserID: uuid.New(), Email: "carol@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
			loginPass: "wrongpass",
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
			loginPass: password,
		},
		{
			name:      "JWT generation error",
			email:     "dan@example.com",
			user:      &models.UserDB{UserID: userID, Email: "dan@example.com", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
			loginPass: password,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.UserID, tt.user.Email, tt.user.Phone).
					Return(tt.expectJWT, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectJWT, token)
			}
		})
	}
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)

	_, err := svc.Login(context.Background(), "  Alice@Example.COM ", "x")
	assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
}
