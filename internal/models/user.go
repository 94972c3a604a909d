// Package models содержит доменные структуры системы бронирования занятий:
// пользователей, предложения занятий, элементы корзины и платежи.
// Структуры используются в бизнес-логике и при работе с хранилищем документов.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Роли пользователя. Отсутствие роли трактуется как "student".
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// User представляет зарегистрированного пользователя системы.
// Email — уникальный ключ поиска (сравнение чувствительно к регистру).
// Поле Role может отсутствовать: такой пользователь считается студентом.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

// IsAdmin сообщает, является ли пользователь администратором.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsInstructor сообщает, является ли пользователь инструктором.
func (u *User) IsInstructor() bool {
	return u.Role == RoleInstructor
}

// DummyUser используется для приёма данных из JSON-запроса регистрации,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
}
