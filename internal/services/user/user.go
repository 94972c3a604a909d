// Package user содержит бизнес-логику работы с пользователями:
// регистрацию при первом входе, разрешение ролей и их назначение.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser добавляет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// FindUserByEmail возвращает пользователя по email или nil, если такого нет.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// SetUserRole выставляет роль пользователя по ID.
	SetUserRole(ctx context.Context, id, role string) (int64, error)
	// UnsetUserRole снимает роль пользователя по ID.
	UnsetUserRole(ctx context.Context, id string) (int64, error)
}

// Service реализует бизнес-логику работы с пользователями.
type Service struct {
	repo UserRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo UserRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Register создаёт пользователя при первом входе. Если пользователь с таким
// email уже существует, возвращает created=false и ничего не вставляет.
// Проверка и вставка не атомарны: два одновременных запроса с одним email
// могут оба пройти проверку.
func (s *Service) Register(ctx context.Context, req models.DummyUser) (string, bool, error) {
	existing, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return "", false, fmt.Errorf("failed to find user: %w", err)
	}
	if existing != nil {
		return existing.ID.Hex(), false, nil
	}

	id, err := s.repo.CreateUser(ctx, models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("registered new user", slog.String("id", id))
	return id, true, nil
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// ResolveRole возвращает роль пользователя по email. Для неизвестного
// пользователя и пользователя без роли возвращается пустая строка
// (трактуется как "student").
func (s *Service) ResolveRole(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}

// Promote выставляет пользователю роль admin или instructor по его ID.
func (s *Service) Promote(ctx context.Context, id, role string) (int64, error) {
	if role != models.RoleAdmin && role != models.RoleInstructor {
		return 0, fmt.Errorf("unknown role: %s", role)
	}
	count, err := s.repo.SetUserRole(ctx, id, role)
	if err != nil {
		return 0, err
	}
	s.log.Info("updated user role", slog.String("id", id), slog.String("role", role))
	return count, nil
}

// Demote снимает роль пользователя по его ID, возвращая его к состоянию
// "student" (поле role отсутствует в документе).
func (s *Service) Demote(ctx context.Context, id string) (int64, error) {
	count, err := s.repo.UnsetUserRole(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("removed user role", slog.String("id", id))
	return count, nil
}
