package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// CreateCartItem вставляет элемент корзины и возвращает его ID.
func (s *Storage) CreateCartItem(ctx context.Context, item models.CartItem) (string, error) {
	const op = "storage.CreateCartItem"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.db.Collection(collCarts).InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return id.Hex(), nil
}

// ListCartItems возвращает элементы корзины пользователя по email.
func (s *Storage) ListCartItems(ctx context.Context, email string) ([]*models.CartItem, error) {
	const op = "storage.ListCartItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.db.Collection(collCarts).Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var items []*models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// RemoveCartItem удаляет элемент корзины по ID и возвращает количество
// удалённых документов.
func (s *Storage) RemoveCartItem(ctx context.Context, id string) (int64, error) {
	const op = "storage.RemoveCartItem"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}

	res, err := s.db.Collection(collCarts).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}

// RemoveCartItems удаляет все элементы корзины из переданного списка ID
// и возвращает количество удалённых документов. Некорректные ID в списке
// приводят к ошибке до обращения к хранилищу.
func (s *Storage) RemoveCartItems(ctx context.Context, ids []string) (int64, error) {
	const op = "storage.RemoveCartItems"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
		}
		oids = append(oids, oid)
	}

	res, err := s.db.Collection(collCarts).DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}
