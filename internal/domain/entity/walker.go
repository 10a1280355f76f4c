package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Testimonial struct {
	Name    string  `bson:"nome" json:"nome"`
	Stars   float64 `bson:"estrelas" json:"estrelas"`
	Comment string  `bson:"comentario,omitempty" json:"comentario,omitempty"`
}

// Walker is a document in the passeadores collection. Testimonials are
// embedded; the proximity search averages their star ratings.
type Walker struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"nome" json:"nome"`
	Stars        float64            `bson:"estrelas" json:"estrelas"`
	Testimonials []Testimonial      `bson:"depoimentos,omitempty" json:"depoimentos,omitempty"`
	Location     *GeoPoint          `bson:"localizacao,omitempty" json:"localizacao,omitempty"`
}
