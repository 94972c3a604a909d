package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem связывает студента с занятием, которое он собирается оплатить.
// Email — владелец элемента корзины, ClassID — ссылка на занятие.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	ClassID   string             `bson:"classId" json:"classId"`
	ClassName string             `bson:"className,omitempty" json:"className,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Price     float64            `bson:"price" json:"price"`
}

// DummyCartItem используется для приёма данных из JSON-запроса добавления в корзину.
type DummyCartItem struct {
	Email     string  `json:"email" validate:"required,email"`
	ClassID   string  `json:"classId" validate:"required"`
	ClassName string  `json:"className"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" validate:"gte=0"`
}
