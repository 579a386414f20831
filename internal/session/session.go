// Package session реализует хранилище пользовательских сессий на Redis.
//
// Сессия — это непрозрачный случайный токен, привязанный к пользователю
// на фиксированное время. Redis удаляет просроченные ключи сам, но
// Validate в любом случае перепроверяет expires_at: отложенная очистка
// не влияет на корректность.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/marialebedeva/dailylife-tracker/internal/config"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// Store хранит активные сессии в Redis с временем жизни ttl.
type Store struct {
	db  *redis.Client
	ttl time.Duration
}

// NewStore подключается к Redis и возвращает готовое хранилище сессий.
func NewStore(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*Store, error) {
	const op = "session.NewStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{db: db, ttl: ttl}, nil
}

// Create выпускает новую сессию для пользователя: генерирует
// неугадываемый токен и сохраняет привязку с expires_at = now + ttl.
func (s *Store) Create(ctx context.Context, userUID, username string) (*models.Session, error) {
	const op = "session.Create"

	sess := &models.Session{
		Token:     uuid.NewString(),
		UserUID:   userUID,
		Username:  username,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	jsonData, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Set(ctx, key(sess.Token), jsonData, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sess, nil
}

// Validate возвращает сессию по токену. Второе значение — false,
// если токен неизвестен или срок жизни сессии истёк. Окно сессии
// фиксированное, обращение его не продлевает.
func (s *Store) Validate(ctx context.Context, token string) (*models.Session, bool, error) {
	const op = "session.Validate"

	val, err := s.db.Get(ctx, key(token)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if sess.Expired(time.Now().UTC()) {
		return nil, false, nil
	}
	return &sess, true, nil
}

// Destroy удаляет сессию по токену. Идемпотентна: удаление
// отсутствующего токена не является ошибкой.
func (s *Store) Destroy(ctx context.Context, token string) error {
	const op = "session.Destroy"
	if err := s.db.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(token string) string {
	return "session:" + token
}
