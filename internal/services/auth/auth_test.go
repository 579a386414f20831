package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marialebedeva/dailylife-tracker/internal/lib/password"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
	"github.com/marialebedeva/dailylife-tracker/internal/storage/repository"
)

type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type SessionStoreMock struct {
	mock.Mock
}

func (m *SessionStoreMock) Create(ctx context.Context, userUID, username string) (*models.Session, error) {
	args := m.Called(ctx, userUID, username)
	sess, _ := args.Get(0).(*models.Session)
	return sess, args.Error(1)
}

func (m *SessionStoreMock) Validate(ctx context.Context, token string) (*models.Session, bool, error) {
	args := m.Called(ctx, token)
	sess, _ := args.Get(0).(*models.Session)
	return sess, args.Bool(1), args.Error(2)
}

func (m *SessionStoreMock) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("пароль сохраняется в виде bcrypt-хэша", func(t *testing.T) {
		usersMock := new(UserRepoMock)
		usersMock.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Username == "user1" &&
				u.PasswordHash != "password123" &&
				password.CompareHash(u.PasswordHash, "password123") == nil
		})).Return("uid-1", nil).Once()

		service := NewAuthService(usersMock, new(SessionStoreMock))

		uid, err := service.Register(context.Background(), "user1", "password123")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
		usersMock.AssertExpectations(t)
	})

	t.Run("занятое имя пробрасывается как есть", func(t *testing.T) {
		usersMock := new(UserRepoMock)
		usersMock.On("RegisterUser", mock.Anything, mock.Anything).
			Return("", repository.ErrUsernameTaken).Once()

		service := NewAuthService(usersMock, new(SessionStoreMock))

		_, err := service.Register(context.Background(), "user1", "password123")
		assert.ErrorIs(t, err, repository.ErrUsernameTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.GetHash("password123")
	require.NoError(t, err)

	storedUser := &models.User{
		UID:          "uid-1",
		Username:     "user1",
		PasswordHash: hash,
	}
	storedSession := &models.Session{
		Token:     "tok123",
		UserUID:   "uid-1",
		Username:  "user1",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	t.Run("успешный вход выпускает сессию", func(t *testing.T) {
		usersMock := new(UserRepoMock)
		usersMock.On("GetUserByUsername", mock.Anything, "user1").Return(storedUser, nil).Once()
		sessionsMock := new(SessionStoreMock)
		sessionsMock.On("Create", mock.Anything, "uid-1", "user1").Return(storedSession, nil).Once()

		service := NewAuthService(usersMock, sessionsMock)

		sess, user, err := service.Login(context.Background(), "user1", "password123")
		require.NoError(t, err)
		assert.Equal(t, "tok123", sess.Token)
		assert.Equal(t, "uid-1", user.UID)
		assert.Equal(t, "user1", user.Username)
		usersMock.AssertExpectations(t)
		sessionsMock.AssertExpectations(t)
	})

	t.Run("неизвестное имя и неверный пароль неразличимы", func(t *testing.T) {
		usersMock := new(UserRepoMock)
		usersMock.On("GetUserByUsername", mock.Anything, "ghost").
			Return(nil, repository.ErrUserNotFound).Once()
		usersMock.On("GetUserByUsername", mock.Anything, "user1").
			Return(storedUser, nil).Once()

		service := NewAuthService(usersMock, new(SessionStoreMock))

		_, _, errUnknown := service.Login(context.Background(), "ghost", "password123")
		_, _, errWrongPass := service.Login(context.Background(), "user1", "wrongpass")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})

	t.Run("ошибка хранилища сессий не маскируется под неверные данные", func(t *testing.T) {
		usersMock := new(UserRepoMock)
		usersMock.On("GetUserByUsername", mock.Anything, "user1").Return(storedUser, nil).Once()
		sessionsMock := new(SessionStoreMock)
		sessionsMock.On("Create", mock.Anything, "uid-1", "user1").
			Return(nil, errors.New("redis down")).Once()

		service := NewAuthService(usersMock, sessionsMock)

		_, _, err := service.Login(context.Background(), "user1", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("пустой токен не трогает хранилище", func(t *testing.T) {
		sessionsMock := new(SessionStoreMock)
		service := NewAuthService(new(UserRepoMock), sessionsMock)

		err := service.Logout(context.Background(), "")
		assert.NoError(t, err)
		sessionsMock.AssertNotCalled(t, "Destroy")
	})

	t.Run("токен уничтожается в хранилище", func(t *testing.T) {
		sessionsMock := new(SessionStoreMock)
		sessionsMock.On("Destroy", mock.Anything, "tok123").Return(nil).Once()

		service := NewAuthService(new(UserRepoMock), sessionsMock)

		err := service.Logout(context.Background(), "tok123")
		assert.NoError(t, err)
		sessionsMock.AssertExpectations(t)
	})
}

func TestAuthService_Check(t *testing.T) {
	storedSession := &models.Session{
		Token:     "tok123",
		UserUID:   "uid-1",
		Username:  "user1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name      string
		token     string
		mockSess  *models.Session
		mockFound bool
		mockErr   error
		wantCall  bool
		wantOK    bool
		wantErr   bool
	}{
		{name: "действующая сессия", token: "tok123", mockSess: storedSession, mockFound: true, wantCall: true, wantOK: true},
		{name: "пустой токен", token: ""},
		{name: "неизвестный токен", token: "tok-unknown", wantCall: true},
		{name: "ошибка хранилища", token: "tok123", mockErr: errors.New("redis down"), wantCall: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionsMock := new(SessionStoreMock)
			if tt.wantCall {
				sessionsMock.On("Validate", mock.Anything, tt.token).
					Return(tt.mockSess, tt.mockFound, tt.mockErr).Once()
			}

			service := NewAuthService(new(UserRepoMock), sessionsMock)

			user, ok, err := service.Check(context.Background(), tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "uid-1", user.UID)
			} else {
				assert.Nil(t, user)
			}
			sessionsMock.AssertExpectations(t)
		})
	}
}
