package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BannerHome      = "home"
	BannerCategory  = "category"
	BannerOffer     = "offer"
	BannerFestival  = "festival"
	BannerFlashsale = "flashsale"
)

func ValidBannerType(s string) bool {
	switch s {
	case BannerHome, BannerCategory, BannerOffer, BannerFestival, BannerFlashsale:
		return true
	}
	return false
}

type Banner struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	ImageUrl    string             `bson:"imageUrl" json:"imageUrl" validate:"required"`
	Link        string             `bson:"link" json:"link"`
	BannerType  string             `bson:"bannerType" json:"bannerType"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	StartDate   *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Priority    int                `bson:"priority" json:"priority"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BannerPatch is a partial update; nil fields are left untouched.
type BannerPatch struct {
	Title       *string
	ImageUrl    *string
	Link        *string
	BannerType  *string
	IsActive    *bool
	StartDate   *time.Time
	EndDate     *time.Time
	Priority    *int
	Description *string
}
