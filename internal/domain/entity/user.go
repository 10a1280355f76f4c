package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin        = "Admin"
	RoleClient       = "Cliente"
	RoleProfessional = "Profissional"
)

// User is a document in the usuarios collection. The password hash never
// leaves the API: reads exclude it by projection and the json tag hides it
// from any accidental serialization.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"nome" json:"nome"`
	Email  string             `bson:"email" json:"email"`
	Senha  string             `bson:"senha,omitempty" json:"-"`
	Active bool               `bson:"ativo" json:"ativo"`
	Role   string             `bson:"tipo" json:"tipo"`
	Avatar string             `bson:"avatar" json:"avatar"`
}
