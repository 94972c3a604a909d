package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Статусы предложения занятия. Новое занятие создаётся со статусом pending,
// переходы выполняет администратор.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Class представляет предложение занятия, созданное инструктором.
// InstructorEmail — владелец записи; Students — количество записавшихся,
// по нему выполняется сортировка списков по убыванию.
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats  int                `bson:"availableSeats" json:"availableSeats"`
	Price           float64            `bson:"price" json:"price"`
	Students        int                `bson:"students" json:"students"`
	Status          string             `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// DummyClass используется для приёма данных из JSON-запроса создания занятия.
// Статус и счётчик студентов выставляются сервисом, а не клиентом.
type DummyClass struct {
	Name            string  `json:"name" validate:"required"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	AvailableSeats  int     `json:"availableSeats" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
}

// StatusUpdate описывает изменение статуса занятия администратором.
// Если Feedback непустой, занятие отклоняется с сохранением отзыва.
type StatusUpdate struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}
