package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Address struct {
	Street       string `bson:"logradouro" json:"logradouro"`
	Municipality string `bson:"municipio" json:"municipio"`
}

// Student is a document in the estudantes collection.
type Student struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"nome" json:"nome"`
	GraduationYear int                `bson:"ano_formatura" json:"ano_formatura"`
	Role           string             `bson:"tipo" json:"tipo"`
	AverageGrade   float64            `bson:"nota_media" json:"nota_media"`
	Address        Address            `bson:"endereco" json:"endereco"`
}
