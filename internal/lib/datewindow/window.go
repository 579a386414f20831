// Package datewindow содержит вспомогательные функции для работы с
// календарными датами в формате 2006-01-02: границы скользящих окон
// для статистики и проверка попадания даты в диапазон.
//
// Сравнение дат-строк выполняется лексикографически, что корректно
// только потому, что формат фиксированной ширины.
package datewindow

import "time"

// DayFormat — формат календарного дня без компоненты времени.
const DayFormat = "2006-01-02"

// Day возвращает календарный день момента t в UTC.
func Day(t time.Time) string {
	return t.UTC().Format(DayFormat)
}

// Start возвращает первый день окна в days дней, заканчивающегося
// днём момента now. Граничный день включается: записи с датой,
// равной Start, попадают в окно.
func Start(now time.Time, days int) string {
	return now.UTC().AddDate(0, 0, -days).Format(DayFormat)
}

// InRange сообщает, попадает ли день date в диапазон [from, to].
// Пустая граница означает открытый край диапазона.
func InRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
