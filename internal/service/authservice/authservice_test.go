package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/translator/internal/domain"
	"github.com/GlebRadaev/translator/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, time.Hour)
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration normalises email",
			email:    "  User@Example.COM ",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), &domain.User{
					Email:        "user@example.com",
					PasswordHash: "hashedpassword",
				}).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "User already exists",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(&domain.User{Email: "user@example.com"}, nil)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:     "Concurrent registration loses the unique race",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, domain.ErrUserExists)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:     "Error finding user",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)
	stored := &domain.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: "hashedpassword",
	}

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "USER@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "Unknown user",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Incorrect password",
			email:    "user@example.com",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Store error",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).
					DoAndReturn(func(_ int, expiresAt time.Time) (string, error) {
						assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
						return "generated-token", nil
					})
			},
			expectedToken: "generated-token",
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	userRepo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{ID: 1, Email: "user@example.com"}, nil)
	user, err := service.GetProfile(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)

	userRepo.EXPECT().FindByID(context.Background(), 2).Return(nil, nil)
	user, err = service.GetProfile(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)

	userRepo.EXPECT().FindByID(context.Background(), 3).Return(nil, errors.New("database error"))
	_, err = service.GetProfile(context.Background(), 3)
	assert.EqualError(t, err, "database error")
}
