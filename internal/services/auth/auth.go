// Package services содержит логику бизнес-уровня для работы с пользователями,
// их регистрацией и сессионной аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/marialebedeva/dailylife-tracker/internal/lib/password"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// ErrInvalidCredentials возвращается при неверной паре имя/пароль.
// Сообщение одинаково для неизвестного имени и неверного пароля,
// чтобы не раскрывать существование учётной записи.
var ErrInvalidCredentials = errors.New("invalid username or password")

// dummyHash — корректный bcrypt-хэш, на котором выполняется холостое
// сравнение при неизвестном имени пользователя: время ответа не должно
// отличаться от случая неверного пароля.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionStore описывает контракт хранилища сессий.
type SessionStore interface {
	// Create выпускает новую сессию для пользователя.
	Create(ctx context.Context, userUID, username string) (*models.Session, error)
	// Validate возвращает сессию по токену; false — токен неизвестен или истёк.
	Validate(ctx context.Context, token string) (*models.Session, bool, error)
	// Destroy удаляет сессию, идемпотентна.
	Destroy(ctx context.Context, token string) error
}

// AuthService отвечает за регистрацию, вход, выход и проверку сессии.
type AuthService struct {
	users    UserRepository
	sessions SessionStore
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Register создает нового пользователя с хэшированием пароля и возвращает его UID.
// Длины имени и пароля проверяет валидатор на границе HTTP; уникальность
// имени обеспечивает хранилище.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и выпускает новую сессию.
// Закрывается при любой ошибке поиска: неизвестное имя и неверный
// пароль неразличимы ни по сообщению, ни по времени ответа.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (*models.Session, *models.UserSummary, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		_ = password.CompareHash(dummyHash, rawPassword)
		return nil, nil, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.UID, user.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}
	summary := user.Summary()
	return sess, &summary, nil
}

// Logout уничтожает сессию по токену. Идемпотентна: выход с
// отсутствующим или истёкшим токеном успешен.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, token)
}

// Check возвращает владельца действующей сессии.
// Второе значение — false, если токен пуст, неизвестен или истёк.
func (s *AuthService) Check(ctx context.Context, token string) (*models.UserSummary, bool, error) {
	if token == "" {
		return nil, false, nil
	}
	sess, found, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return &models.UserSummary{UID: sess.UserUID, Username: sess.Username}, true, nil
}
