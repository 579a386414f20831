package models

// StatsSummary — агрегированные счётчики навыков пользователя.
// Недельное и месячное окна включают граничный день и считаются
// от момента вызова, а не из материализованного представления.
type StatsSummary struct {
	TotalSkills int `json:"totalSkills"`
	WeekSkills  int `json:"weekSkills"`
	MonthSkills int `json:"monthSkills"`
}
