package models

import "time"

// Session связывает непрозрачный токен с аутентифицированным
// пользователем. Создаётся при входе, уничтожается при выходе
// или по истечении фиксированного срока жизни.
type Session struct {
	Token     string    `json:"token"`
	UserUID   string    `json:"user_uid"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired сообщает, истёк ли срок жизни сессии к моменту now.
// Продление по обращению не выполняется: окно фиксировано с момента создания.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
