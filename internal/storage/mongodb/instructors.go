package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// ListInstructors возвращает карточки инструкторов, отсортированные
// по количеству студентов по убыванию.
func (s *Storage) ListInstructors(ctx context.Context) ([]*models.Instructor, error) {
	const op = "storage.ListInstructors"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	opts := options.Find().SetSort(bson.D{{Key: "students", Value: -1}})
	cursor, err := s.db.Collection(collInstructors).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var instructors []*models.Instructor
	if err := cursor.All(ctx, &instructors); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return instructors, nil
}
