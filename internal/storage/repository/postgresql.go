// Package repository реализует хранилище данных на основе PostgreSQL
// для дневника активности. Предоставляет методы работы с пользователями,
// записями трёх видов (события, навыки, учебные сессии) и агрегатами
// по навыкам. Каждая запись принадлежит ровно одному пользователю, и
// все операции чтения и изменения фильтруются по user_uid.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"database/sql"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Ошибки уровня хранилища, различимые бизнес-логикой.
var (
	// ErrUsernameTaken возвращается при нарушении уникальности имени
	// пользователя. Проверка и вставка — одна атомарная операция на
	// стороне базы (UNIQUE-ограничение), гонки check-then-act нет.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound возвращается, когда пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
)

// DefaultQueryTimeout ограничивает длительность одного запроса к базе,
// если в конфигурации не задано иное.
const DefaultQueryTimeout = 5 * time.Second

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB      *sql.DB
	timeout time.Duration
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
// queryTimeout ограничивает каждый отдельный запрос; ноль означает
// значение по умолчанию.
func New(storageConnectionString string, queryTimeout time.Duration) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}

	return &Storage{
		DB:      db,
		timeout: queryTimeout,
	}, nil
}

// queryCtx возвращает контекст с ограничением длительности запроса.
// Ни один вызов хранилища не блокируется бесконечно.
func (s *Storage) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Close закрывает пул соединений с базой данных.
func (s *Storage) Close() error {
	return s.DB.Close()
}
