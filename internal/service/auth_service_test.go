package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lakehire/internal/auth"
	apperrors "lakehire/internal/errors"
	"lakehire/internal/mail"
	"lakehire/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		role          model.Role
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:  "successful consultant registration",
			email: "test@example.com",
			role:  model.RoleConsultant,
			setupMock: func(m *MockUserRepository, ts *MockTokenStore) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				ts.On("StoreEmailOTP", mock.Anything, "test@example.com", mock.AnythingOfType("string")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "user already exists",
			email: "existing@example.com",
			role:  model.RoleCompany,
			setupMock: func(m *MockUserRepository, ts *MockTokenStore) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:          "admin role cannot self-register",
			email:         "sneaky@example.com",
			role:          model.RoleAdmin,
			setupMock:     func(m *MockUserRepository, ts *MockTokenStore) {},
			expectedError: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore, mail.NopPublisher{})

			user, err := service.Register(context.Background(), tt.email, "password123", "Test", "User", tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, model.UserStatusPending, user.Status)
				assert.False(t, user.EmailVerified)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, "password123", user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				userID := uuid.New()
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           userID,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleConsultant,
					Status:       model.UserStatusApproved,
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, userID.String(), "test@example.com", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user not found",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "suspended account cannot login",
			email:    "suspended@example.com",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "suspended@example.com").Return(&model.User{
					Email:        "suspended@example.com",
					PasswordHash: string(hashedPassword),
					Status:       model.UserStatusSuspended,
				}, nil)
			},
			expectedError: ErrAccountSuspended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore, mail.NopPublisher{})

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyEmail(t *testing.T) {
	t.Run("valid code promotes user and is single use", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)

		mockTokenStore.On("CheckEmailOTP", mock.Anything, "test@example.com", "123456").Return(true, nil)
		mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
			Email:  "test@example.com",
			Status: model.UserStatusPending,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		mockTokenStore.On("DeleteEmailOTP", mock.Anything, "test@example.com").Return(nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockTokenStore, mail.NopPublisher{})
		user, err := service.VerifyEmail(context.Background(), "test@example.com", "123456")

		assert.NoError(t, err)
		assert.True(t, user.EmailVerified)
		assert.Equal(t, model.UserStatusEmailVerified, user.Status)
		mockTokenStore.AssertCalled(t, "DeleteEmailOTP", mock.Anything, "test@example.com")
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("CheckEmailOTP", mock.Anything, "test@example.com", "000000").Return(false, nil)

		service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), mockTokenStore, mail.NopPublisher{})
		user, err := service.VerifyEmail(context.Background(), "test@example.com", "000000")

		assert.Equal(t, apperrors.ErrInvalidOTP, err)
		assert.Nil(t, user)
	})
}
