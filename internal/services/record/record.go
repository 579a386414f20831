// Package services содержит бизнес-логику работы с записями дневника:
// добавление и удаление с проверкой владельца, списки по видам,
// объединённая лента истории и поиск по ней.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/marialebedeva/dailylife-tracker/internal/lib/datewindow"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// RecordRepository определяет методы для работы с записями в хранилище.
// Каждый метод чтения и удаления принимает UID владельца: хранилище
// не отдаёт и не трогает чужие записи.
type RecordRepository interface {
	CreateEvent(ctx context.Context, event models.Event) (int64, error)
	ListEvents(ctx context.Context, userUID string) ([]*models.Event, error)
	DeleteEvent(ctx context.Context, userUID string, id int64) (int64, error)

	CreateSkill(ctx context.Context, skill models.Skill) (int64, error)
	ListSkills(ctx context.Context, userUID string) ([]*models.Skill, error)
	DeleteSkill(ctx context.Context, userUID string, id int64) (int64, error)

	CreateStudy(ctx context.Context, study models.Study) (int64, error)
	ListStudies(ctx context.Context, userUID string) ([]*models.Study, error)
	DeleteStudy(ctx context.Context, userUID string, id int64) (int64, error)
}

// RecordService реализует бизнес-логику работы с записями дневника.
type RecordService struct {
	repo RecordRepository
	log  *slog.Logger
}

// NewRecordService создает новый экземпляр RecordService.
func NewRecordService(repo RecordRepository, log *slog.Logger) *RecordService {
	return &RecordService{
		repo: repo,
		log:  log,
	}
}

// AddEvent сохраняет событие пользователя и возвращает запись с присвоенным ID.
func (s *RecordService) AddEvent(ctx context.Context, userUID string, req models.DummyEvent) (models.Record, error) {
	event := models.Event{
		UserUID:     userUID,
		Date:        req.Date,
		Time:        req.Time,
		Title:       req.Title,
		Description: req.Description,
	}
	id, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return models.Record{}, err
	}
	event.ID = id
	s.log.Info("created new event", slog.Int64("id", id))
	return event.Record(), nil
}

// AddSkill сохраняет навык пользователя и возвращает запись с присвоенным ID.
func (s *RecordService) AddSkill(ctx context.Context, userUID string, req models.DummySkill) (models.Record, error) {
	skill := models.Skill{
		UserUID:     userUID,
		Date:        req.Date,
		Name:        req.Name,
		Category:    req.Category,
		Level:       req.Level,
		Description: req.Description,
	}
	id, err := s.repo.CreateSkill(ctx, skill)
	if err != nil {
		return models.Record{}, err
	}
	skill.ID = id
	s.log.Info("created new skill", slog.Int64("id", id))
	return skill.Record(), nil
}

// AddStudy сохраняет учебную сессию пользователя и возвращает запись с присвоенным ID.
func (s *RecordService) AddStudy(ctx context.Context, userUID string, req models.DummyStudy) (models.Record, error) {
	study := models.Study{
		UserUID:  userUID,
		Date:     req.Date,
		Subject:  req.Subject,
		Duration: req.Duration,
		Notes:    req.Notes,
	}
	id, err := s.repo.CreateStudy(ctx, study)
	if err != nil {
		return models.Record{}, err
	}
	study.ID = id
	s.log.Info("created new study", slog.Int64("id", id))
	return study.Record(), nil
}

// List возвращает записи пользователя одного вида в объединённом
// представлении. Порядок задаёт хранилище: свежие дни первыми.
// Пустой список — нормальный результат, не ошибка.
func (s *RecordService) List(ctx context.Context, userUID string, kind models.RecordKind) ([]models.Record, error) {
	records := make([]models.Record, 0)
	switch kind {
	case models.KindEvent:
		items, err := s.repo.ListEvents(ctx, userUID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			records = append(records, item.Record())
		}
	case models.KindSkill:
		items, err := s.repo.ListSkills(ctx, userUID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			records = append(records, item.Record())
		}
	case models.KindStudy:
		items, err := s.repo.ListStudies(ctx, userUID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			records = append(records, item.Record())
		}
	default:
		return nil, fmt.Errorf("unknown record kind: %q", kind)
	}
	return records, nil
}

// Delete удаляет запись пользователя по виду и ID, возвращает число
// удалённых строк. Удаление чужой или отсутствующей записи — не
// ошибка: вызов успешен с нулевым счётчиком.
func (s *RecordService) Delete(ctx context.Context, userUID string, kind models.RecordKind, id int64) (int64, error) {
	switch kind {
	case models.KindEvent:
		return s.repo.DeleteEvent(ctx, userUID, id)
	case models.KindSkill:
		return s.repo.DeleteSkill(ctx, userUID, id)
	case models.KindStudy:
		return s.repo.DeleteStudy(ctx, userUID, id)
	}
	return 0, fmt.Errorf("unknown record kind: %q", kind)
}

// kindRank задаёт порядок видов при совпадении даты в ленте истории.
var kindRank = map[models.RecordKind]int{
	models.KindEvent: 0,
	models.KindSkill: 1,
	models.KindStudy: 2,
}

// History возвращает объединённую ленту записей всех видов:
// по убыванию даты, при равной дате — события, навыки, учёба,
// внутри вида — порядок добавления.
func (s *RecordService) History(ctx context.Context, userUID string) ([]models.Record, error) {
	records := make([]models.Record, 0)
	for _, kind := range []models.RecordKind{models.KindEvent, models.KindSkill, models.KindStudy} {
		items, err := s.List(ctx, userUID, kind)
		if err != nil {
			return nil, err
		}
		records = append(records, items...)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		if records[i].Type != records[j].Type {
			return kindRank[records[i].Type] < kindRank[records[j].Type]
		}
		return records[i].ID < records[j].ID
	})
	return records, nil
}

// Search фильтрует ленту истории пользователя: по виду записи
// ("all" пропускает все), по подстроке запроса без учёта регистра
// и по включающему диапазону дат. Подстрока ищется по полному
// JSON-представлению записи, а не по отдельному полю.
func (s *RecordService) Search(ctx context.Context, userUID, query, kindFilter, dateFrom, dateTo string) ([]models.Record, error) {
	all, err := s.History(ctx, userUID)
	if err != nil {
		return nil, err
	}

	var kind models.RecordKind
	if kindFilter != "" && kindFilter != "all" {
		kind, err = models.ParseRecordKind(kindFilter)
		if err != nil {
			return nil, err
		}
	}

	query = strings.ToLower(query)
	result := make([]models.Record, 0)
	for _, rec := range all {
		if kind != "" && rec.Type != kind {
			continue
		}
		if !datewindow.InRange(rec.Date, dateFrom, dateTo) {
			continue
		}
		if query != "" {
			serialized, err := json.Marshal(rec)
			if err != nil {
				return nil, fmt.Errorf("serialize record: %w", err)
			}
			if !strings.Contains(strings.ToLower(string(serialized)), query) {
				continue
			}
		}
		result = append(result, rec)
	}
	return result, nil
}
