// Package services содержит бизнес-логику агрегированной статистики
// по навыкам пользователя: суммарные счётчики по скользящим окнам
// и разбивку по категориям.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/marialebedeva/dailylife-tracker/internal/lib/datewindow"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// SkillCounter определяет методы хранилища для подсчёта навыков пользователя.
type SkillCounter interface {
	// CountSkills возвращает общее количество навыков.
	CountSkills(ctx context.Context, userUID string) (int, error)
	// CountSkillsSince возвращает количество навыков с датой не раньше since.
	CountSkillsSince(ctx context.Context, userUID, since string) (int, error)
	// CountSkillsByCategory возвращает счётчики по категориям.
	CountSkillsByCategory(ctx context.Context, userUID string) (map[string]int, error)
}

// Категории, известные интерфейсу. Всё остальное сводится в "other".
var knownCategories = map[string]struct{}{
	"programming": {},
	"design":      {},
	"language":    {},
	"business":    {},
	"other":       {},
}

// StatsService реализует подсчёт статистики навыков.
type StatsService struct {
	repo SkillCounter
	log  *slog.Logger
	now  func() time.Time
}

// NewStatsService создает новый экземпляр StatsService.
func NewStatsService(repo SkillCounter, log *slog.Logger) *StatsService {
	return &StatsService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Summary возвращает счётчики навыков пользователя: всего, за неделю
// и за месяц. Окна считаются от момента вызова, граничный день
// включается, результат нигде не кешируется.
func (s *StatsService) Summary(ctx context.Context, userUID string) (*models.StatsSummary, error) {
	now := s.now().UTC()

	total, err := s.repo.CountSkills(ctx, userUID)
	if err != nil {
		return nil, err
	}
	week, err := s.repo.CountSkillsSince(ctx, userUID, datewindow.Start(now, 7))
	if err != nil {
		return nil, err
	}
	month, err := s.repo.CountSkillsSince(ctx, userUID, datewindow.Start(now, 30))
	if err != nil {
		return nil, err
	}

	return &models.StatsSummary{
		TotalSkills: total,
		WeekSkills:  week,
		MonthSkills: month,
	}, nil
}

// CategoryBreakdown возвращает количество навыков пользователя по
// категориям. Неизвестная или пустая категория учитывается как "other".
func (s *StatsService) CategoryBreakdown(ctx context.Context, userUID string) (map[string]int, error) {
	raw, err := s.repo.CountSkillsByCategory(ctx, userUID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(raw))
	for category, count := range raw {
		if _, ok := knownCategories[category]; !ok {
			category = "other"
		}
		result[category] += count
	}
	return result, nil
}
