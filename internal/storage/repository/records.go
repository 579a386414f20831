package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/marialebedeva/dailylife-tracker/internal/lib/datewindow"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// CreateEvent вставляет новое событие и возвращает его ID.
func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (int64, error) {
	const op = "storage.CreateEvent"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `INSERT INTO events (user_uid, date, time, title, description)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		event.UserUID, event.Date, event.Time, event.Title, event.Description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListEvents возвращает события пользователя: сначала свежие дни,
// внутри дня — более позднее время, затем порядок добавления.
func (s *Storage) ListEvents(ctx context.Context, userUID string) ([]*models.Event, error) {
	const op = "storage.ListEvents"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `SELECT id, user_uid, date, time, title, description, created_at
			  FROM events
			  WHERE user_uid = $1
			  ORDER BY date DESC, time DESC, id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Event
	for rows.Next() {
		var item models.Event
		var date time.Time
		if err := rows.Scan(&item.ID, &item.UserUID, &date, &item.Time,
			&item.Title, &item.Description, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Date = date.Format(datewindow.DayFormat)
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteEvent удаляет событие пользователя по ID и возвращает число
// удалённых строк. Чужая или отсутствующая запись даёт 0 без ошибки:
// фильтр по владельцу не раскрывает существование чужих записей.
func (s *Storage) DeleteEvent(ctx context.Context, userUID string, id int64) (int64, error) {
	const op = "storage.DeleteEvent"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM events WHERE id = $1 AND user_uid = $2`, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// CreateSkill вставляет новый навык и возвращает его ID.
func (s *Storage) CreateSkill(ctx context.Context, skill models.Skill) (int64, error) {
	const op = "storage.CreateSkill"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `INSERT INTO skills (user_uid, date, name, category, level, description)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		skill.UserUID, skill.Date, skill.Name, skill.Category, skill.Level, skill.Description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListSkills возвращает навыки пользователя: сначала свежие дни,
// внутри дня — порядок добавления.
func (s *Storage) ListSkills(ctx context.Context, userUID string) ([]*models.Skill, error) {
	const op = "storage.ListSkills"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `SELECT id, user_uid, date, name, category, level, description, created_at
			  FROM skills
			  WHERE user_uid = $1
			  ORDER BY date DESC, id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Skill
	for rows.Next() {
		var item models.Skill
		var date time.Time
		if err := rows.Scan(&item.ID, &item.UserUID, &date, &item.Name,
			&item.Category, &item.Level, &item.Description, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Date = date.Format(datewindow.DayFormat)
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteSkill удаляет навык пользователя по ID, семантика как у DeleteEvent.
func (s *Storage) DeleteSkill(ctx context.Context, userUID string, id int64) (int64, error) {
	const op = "storage.DeleteSkill"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM skills WHERE id = $1 AND user_uid = $2`, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// CreateStudy вставляет новую учебную сессию и возвращает её ID.
func (s *Storage) CreateStudy(ctx context.Context, study models.Study) (int64, error) {
	const op = "storage.CreateStudy"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `INSERT INTO studies (user_uid, date, subject, duration, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		study.UserUID, study.Date, study.Subject, study.Duration, study.Notes).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListStudies возвращает учебные сессии пользователя: сначала свежие
// дни, внутри дня — порядок добавления.
func (s *Storage) ListStudies(ctx context.Context, userUID string) ([]*models.Study, error) {
	const op = "storage.ListStudies"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	query := `SELECT id, user_uid, date, subject, duration, notes, created_at
			  FROM studies
			  WHERE user_uid = $1
			  ORDER BY date DESC, id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Study
	for rows.Next() {
		var item models.Study
		var date time.Time
		if err := rows.Scan(&item.ID, &item.UserUID, &date, &item.Subject,
			&item.Duration, &item.Notes, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Date = date.Format(datewindow.DayFormat)
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteStudy удаляет учебную сессию пользователя по ID, семантика как у DeleteEvent.
func (s *Storage) DeleteStudy(ctx context.Context, userUID string, id int64) (int64, error) {
	const op = "storage.DeleteStudy"
	ctx, cancel := s.queryCtx(ctx)
	defer cancel()

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM studies WHERE id = $1 AND user_uid = $2`, id, userUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}
