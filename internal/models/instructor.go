package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Instructor представляет карточку инструктора из витринной коллекции.
// Документы пишутся внешним процессом, сервис их только читает,
// сортируя по количеству студентов по убыванию.
type Instructor struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Students int                `bson:"students" json:"students"`
	Classes  int                `bson:"classes,omitempty" json:"classes,omitempty"`
}
