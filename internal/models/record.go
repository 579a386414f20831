// Package models содержит доменные структуры трёх видов записей дневника
// (события, навыки, учебные сессии), а также вспомогательные типы для
// приёма данных из JSON-запросов до их валидации.
package models

import (
	"fmt"
	"time"
)

// RecordKind определяет вид записи дневника.
type RecordKind string

// Поддерживаемые виды записей.
const (
	KindEvent RecordKind = "event"
	KindSkill RecordKind = "skill"
	KindStudy RecordKind = "study"
)

// ParseRecordKind разбирает вид записи из строки запроса.
// Принимает форму единственного числа, как в URL ("event"),
// и множественного, как в исходных маршрутах ("events").
func ParseRecordKind(s string) (RecordKind, error) {
	switch s {
	case "event", "events":
		return KindEvent, nil
	case "skill", "skills":
		return KindSkill, nil
	case "study", "studies":
		return KindStudy, nil
	}
	return "", fmt.Errorf("unknown record kind: %q", s)
}

// Event представляет одноразовое событие в календарном дне.
// Date хранится строкой в формате 2006-01-02, Time — в формате 15:04.
type Event struct {
	ID          int64     `json:"id"`
	UserUID     string    `json:"-"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Skill представляет освоенный навык с категорией и уровнем.
type Skill struct {
	ID          int64     `json:"id"`
	UserUID     string    `json:"-"`
	Date        string    `json:"date"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Study представляет учебную сессию с длительностью в часах.
type Study struct {
	ID        int64     `json:"id"`
	UserUID   string    `json:"-"`
	Date      string    `json:"date"`
	Subject   string    `json:"subject"`
	Duration  float64   `json:"duration"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Record — объединённое представление записи любого вида для ленты
// истории и поиска. Поля, не относящиеся к виду записи, опускаются
// при сериализации.
type Record struct {
	Type        RecordKind `json:"type"`
	ID          int64      `json:"id"`
	Date        string     `json:"date"`
	Time        string     `json:"time,omitempty"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Name        string     `json:"name,omitempty"`
	Category    string     `json:"category,omitempty"`
	Level       string     `json:"level,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Duration    float64    `json:"duration,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Record возвращает событие в объединённом представлении.
func (e *Event) Record() Record {
	return Record{
		Type:        KindEvent,
		ID:          e.ID,
		Date:        e.Date,
		Time:        e.Time,
		Title:       e.Title,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// Record возвращает навык в объединённом представлении.
func (s *Skill) Record() Record {
	return Record{
		Type:        KindSkill,
		ID:          s.ID,
		Date:        s.Date,
		Name:        s.Name,
		Category:    s.Category,
		Level:       s.Level,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

// Record возвращает учебную сессию в объединённом представлении.
func (s *Study) Record() Record {
	return Record{
		Type:      KindStudy,
		ID:        s.ID,
		Date:      s.Date,
		Subject:   s.Subject,
		Duration:  s.Duration,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}

// DummyEvent используется для приёма события из JSON-запроса
// до конвертации в Event. Даты и время валидируются по формату.
type DummyEvent struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"` // Календарный день
	Time        string `json:"time" validate:"required,datetime=15:04"`      // Час и минута
	Title       string `json:"title" validate:"required"`                    // Заголовок события
	Description string `json:"description" validate:"omitempty"`             // Описание (опционально)
}

// DummySkill используется для приёма навыка из JSON-запроса.
type DummySkill struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=programming design language business other"`
	Level       string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Description string `json:"description" validate:"omitempty"`
}

// DummyStudy используется для приёма учебной сессии из JSON-запроса.
// Длительность — положительное число часов.
type DummyStudy struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Subject  string  `json:"subject" validate:"required"`
	Duration float64 `json:"duration" validate:"required,gt=0"`
	Notes    string  `json:"notes" validate:"omitempty"`
}
