package repository

import (
	"context"
	"fmt"
)

// CountSkills возвращает общее количество навыков пользователя.
func (s *Storage) CountSkills(ctx context.Context, userUID string) (int, error) {
	const op = "storage.CountSkills"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	var total int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM skills WHERE user_uid = $1`, userUID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// CountSkillsSince возвращает количество навыков пользователя с датой
// не раньше since (день в формате 2006-01-02, граница включается).
func (s *Storage) CountSkillsSince(ctx context.Context, userUID, since string) (int, error) {
	const op = "storage.CountSkillsSince"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	var total int
	err := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM skills WHERE user_uid = $1 AND date >= $2::date`,
		userUID, since).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// CountSkillsByCategory возвращает количество навыков пользователя
// по каждой категории, встречающейся в его записях.
func (s *Storage) CountSkillsByCategory(ctx context.Context, userUID string) (map[string]int, error) {
	const op = "storage.CountSkillsByCategory"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `SELECT category, COUNT(*)
			  FROM skills
			  WHERE user_uid = $1
			  GROUP BY category`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[category] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
