package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Professional is a document in the profissionais collection.
type Professional struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"nome" json:"nome"`
	Stars    float64            `bson:"estrelas" json:"estrelas"`
	Location *GeoPoint          `bson:"localizacao,omitempty" json:"localizacao,omitempty"`
}
