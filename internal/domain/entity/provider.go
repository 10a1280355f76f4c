package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// GeoPoint keeps the coordinates exactly as submitted: [latitude,
// longitude], the order the original API stored and queries with.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Provider is a document in the prestadores collection.
type Provider struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CNPJ          string             `bson:"cnpj" json:"cnpj"`
	LegalName     string             `bson:"razao_social" json:"razao_social"`
	ActivityCode  int                `bson:"cnae_fiscal" json:"cnae_fiscal"`
	TradeName     string             `bson:"nome_fantasia,omitempty" json:"nome_fantasia,omitempty"`
	ActivityStart string             `bson:"data_inicio_atividade,omitempty" json:"data_inicio_atividade,omitempty"`
	Location      GeoPoint           `bson:"localizacao" json:"localizacao"`
}
