package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// UploadRecord is the metadata kept for each stored file. Filename is the
// server-generated collision-resistant name, OriginalName what the client
// sent.
type UploadRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Filename     string             `bson:"filename" json:"filename"`
	MimeType     string             `bson:"mimetype" json:"mimetype"`
	OriginalName string             `bson:"originalname" json:"originalname"`
	Size         int64              `bson:"size" json:"size"`
	FieldName    string             `bson:"fieldname" json:"fieldname"`
}
