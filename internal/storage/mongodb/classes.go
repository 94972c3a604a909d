package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// CreateClass вставляет новое занятие и возвращает его ID.
func (s *Storage) CreateClass(ctx context.Context, class models.Class) (string, error) {
	const op = "storage.CreateClass"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.db.Collection(collClasses).InsertOne(ctx, class)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return id.Hex(), nil
}

// ListClasses возвращает занятия, отсортированные по количеству студентов
// по убыванию. Если email непустой, выборка ограничивается занятиями
// этого инструктора.
func (s *Storage) ListClasses(ctx context.Context, email string) ([]*models.Class, error) {
	const op = "storage.ListClasses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	filter := bson.M{}
	if email != "" {
		filter["instructorEmail"] = email
	}
	opts := options.Find().SetSort(bson.D{{Key: "students", Value: -1}})

	cursor, err := s.db.Collection(collClasses).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var classes []*models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return classes, nil
}

// ListDetailedClasses возвращает все документы витринной коллекции занятий.
func (s *Storage) ListDetailedClasses(ctx context.Context) ([]bson.M, error) {
	const op = "storage.ListDetailedClasses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cursor, err := s.db.Collection(collDetailedClasses).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return docs, nil
}

// UpdateClassStatus выполняет частичное обновление полей статуса и отзыва
// занятия по его ID, не затрагивая остальные поля документа.
// Возвращает количество изменённых документов.
func (s *Storage) UpdateClassStatus(ctx context.Context, id, status, feedback string) (int64, error) {
	const op = "storage.UpdateClassStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}

	set := bson.M{"status": status}
	if feedback != "" {
		set["feedback"] = feedback
	}

	res, err := s.db.Collection(collClasses).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.ModifiedCount, nil
}

// RemoveClass удаляет занятие по ID и возвращает количество удалённых документов.
func (s *Storage) RemoveClass(ctx context.Context, id string) (int64, error) {
	const op = "storage.RemoveClass"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidID)
	}

	res, err := s.db.Collection(collClasses).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}
