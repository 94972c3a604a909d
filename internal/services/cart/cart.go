// Package cart содержит бизнес-логику работы с корзиной студента.
package cart

import (
	"context"
	"log/slog"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// CartRepository определяет методы для работы с корзиной в хранилище.
type CartRepository interface {
	// CreateCartItem добавляет элемент корзины и возвращает его ID.
	CreateCartItem(ctx context.Context, item models.CartItem) (string, error)
	// ListCartItems возвращает элементы корзины пользователя по email.
	ListCartItems(ctx context.Context, email string) ([]*models.CartItem, error)
	// RemoveCartItem удаляет элемент корзины по ID.
	RemoveCartItem(ctx context.Context, id string) (int64, error)
}

// Service реализует бизнес-логику работы с корзиной.
type Service struct {
	repo CartRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo CartRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Add добавляет занятие в корзину пользователя и возвращает ID элемента.
func (s *Service) Add(ctx context.Context, req models.DummyCartItem) (string, error) {
	id, err := s.repo.CreateCartItem(ctx, models.CartItem{
		Email:     req.Email,
		ClassID:   req.ClassID,
		ClassName: req.ClassName,
		Image:     req.Image,
		Price:     req.Price,
	})
	if err != nil {
		return "", err
	}
	s.log.Info("added cart item", slog.String("id", id))
	return id, nil
}

// List возвращает элементы корзины по email. Без email возвращается
// пустой список, а не вся коллекция.
func (s *Service) List(ctx context.Context, email string) ([]*models.CartItem, error) {
	if email == "" {
		return []*models.CartItem{}, nil
	}
	return s.repo.ListCartItems(ctx, email)
}

// Remove удаляет элемент корзины по ID и возвращает количество
// удалённых документов.
func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	return s.repo.RemoveCartItem(ctx, id)
}
