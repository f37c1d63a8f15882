package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Image     string             `bson:"image" json:"image" validate:"required"`
	Desc      string             `bson:"desc" json:"desc" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Subcategory struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Image     string             `bson:"image" json:"image"`
	Desc      string             `bson:"desc" json:"desc"`
	Category  primitive.ObjectID `bson:"category" json:"category"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Product struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Images      []string           `bson:"images" json:"images" validate:"required,min=1,dive"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Desc        string             `bson:"desc" json:"desc" validate:"required"`
	Stock       int                `bson:"stock" json:"stock"`
	Discount    float64            `bson:"discount,omitempty" json:"discount,omitempty"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Subcategory primitive.ObjectID `bson:"subcategory" json:"subcategory"`
	Status      bool               `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FirstImage returns the lead product image, or "" for a product without images.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
