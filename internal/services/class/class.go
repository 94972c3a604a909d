// Package class содержит бизнес-логику работы с занятиями, включая кеширование
// отсортированного списка.
package class

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// Ключ кеша для общего списка занятий. Выборки с фильтром по email
// не кешируются.
const listCacheKey = "classes:all"

// ClassRepository определяет методы для работы с занятиями в хранилище.
type ClassRepository interface {
	// CreateClass добавляет новое занятие и возвращает его ID.
	CreateClass(ctx context.Context, class models.Class) (string, error)
	// ListClasses возвращает занятия, отсортированные по студентам по убыванию,
	// с необязательным фильтром по email инструктора.
	ListClasses(ctx context.Context, email string) ([]*models.Class, error)
	// ListDetailedClasses возвращает документы витринной коллекции.
	ListDetailedClasses(ctx context.Context) ([]bson.M, error)
	// UpdateClassStatus выполняет частичное обновление статуса и отзыва.
	UpdateClassStatus(ctx context.Context, id, status, feedback string) (int64, error)
	// RemoveClass удаляет занятие по ID.
	RemoveClass(ctx context.Context, id string) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с занятиями, включая кеширование.
type Service struct {
	repo  ClassRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo ClassRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создаёт новое занятие со статусом pending и нулевым количеством
// студентов, инвалидирует кеш списка и возвращает ID записи.
func (s *Service) Create(ctx context.Context, req models.DummyClass) (string, error) {
	class := models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  req.AvailableSeats,
		Price:           req.Price,
		Students:        0,
		Status:          models.StatusPending,
	}

	id, err := s.repo.CreateClass(ctx, class)
	if err != nil {
		return "", err
	}
	s.log.Info("created new class", slog.String("id", id))

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate class list cache", slog.Any("err", err))
	}
	return id, nil
}

// List возвращает занятия, отсортированные по количеству студентов по
// убыванию. Для выборки без фильтра используется кеш.
func (s *Service) List(ctx context.Context, email string) ([]*models.Class, error) {
	if email != "" {
		return s.repo.ListClasses(ctx, email)
	}

	var cached []*models.Class
	found, err := s.cache.Get(listCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read class list cache", slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	classes, err := s.repo.ListClasses(ctx, "")
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(listCacheKey, classes, time.Minute); err != nil {
		s.log.Warn("failed to cache class list", slog.Any("err", err))
	}
	return classes, nil
}

// DetailedList возвращает все документы витринной коллекции занятий.
func (s *Service) DetailedList(ctx context.Context) ([]bson.M, error) {
	return s.repo.ListDetailedClasses(ctx)
}

// UpdateStatus меняет статус занятия. Если передан отзыв, занятие
// отклоняется со статусом denied и сохранением текста отзыва —
// независимо от статуса в запросе.
func (s *Service) UpdateStatus(ctx context.Context, id string, req models.StatusUpdate) (int64, error) {
	status := req.Status
	if req.Feedback != "" {
		status = models.StatusDenied
	}
	if status != models.StatusPending && status != models.StatusApproved && status != models.StatusDenied {
		return 0, fmt.Errorf("unknown status: %s", status)
	}

	count, err := s.repo.UpdateClassStatus(ctx, id, status, req.Feedback)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate class list cache", slog.Any("err", err))
	}
	return count, nil
}

// Remove удаляет занятие по ID и инвалидирует кеш списка.
func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	count, err := s.repo.RemoveClass(ctx, id)
	if err != nil {
		return 0, err
	}

	if err := s.cache.Invalidate(listCacheKey); err != nil {
		s.log.Warn("failed to invalidate class list cache", slog.Any("err", err))
	}
	return count, nil
}
