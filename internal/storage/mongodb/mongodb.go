// Package mongodb реализует хранилище данных на основе MongoDB
// для системы бронирования занятий. Предоставляет методы создания,
// чтения, обновления и удаления документов в коллекциях пользователей,
// занятий, инструкторов, корзин и платежей.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/config"
)

// ErrInvalidID возвращается, когда параметр пути не является корректным
// идентификатором документа. Обработчики отвечают на него статусом 400,
// не доводя запрос до хранилища.
var ErrInvalidID = errors.New("invalid document id")

// Имена коллекций хранилища. Соответствуют документам,
// которые пишет и читает клиентское приложение.
const (
	collUsers           = "users"
	collClasses         = "classes"
	collDetailedClasses = "detailedClasses"
	collInstructors     = "instructors"
	collCarts           = "carts"
	collPayments        = "payments"
)

// Storage инкапсулирует соединение с MongoDB и реализует методы
// работы с коллекциями системы бронирования.
type Storage struct {
	Client *mongo.Client
	db     *mongo.Database
}

// New создаёт подключение к MongoDB и проверяет его доступность.
func New(ctx context.Context, cfg config.MongoConnection) (*Storage, error) {
	const op = "storage.mongodb.New"

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		Client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Close разрывает соединение с хранилищем.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
