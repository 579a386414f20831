package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное, с учётом регистра)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата регистрации
}

// UserSummary — публичное представление пользователя, отдаваемое клиенту.
// Хэш пароля наружу не выходит.
type UserSummary struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

// Summary возвращает публичное представление пользователя.
func (u *User) Summary() UserSummary {
	return UserSummary{UID: u.UID, Username: u.Username}
}
