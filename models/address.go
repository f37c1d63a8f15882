package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId      primitive.ObjectID `bson:"userId" json:"userId"`
	Label       string             `bson:"label" json:"label"`
	FullAddress string             `bson:"fullAddress" json:"fullAddress" validate:"required"`
	City        string             `bson:"city,omitempty" json:"city,omitempty"`
	State       string             `bson:"state,omitempty" json:"state,omitempty"`
	Pincode     string             `bson:"pincode" json:"pincode" validate:"required"`
	Latitude    float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	IsDefault   bool               `bson:"isDefault" json:"isDefault"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
