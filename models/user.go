package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username   string             `bson:"username" json:"username" validate:"required"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Password   string             `bson:"password,omitempty" json:"-"`
	Otp        string             `bson:"otp,omitempty" json:"-"`
	OtpExpires time.Time          `bson:"otpExpires,omitempty" json:"-"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Profile carries the optional user details kept apart from the auth record.
type Profile struct {
	Id           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserId       primitive.ObjectID `bson:"userId" json:"userId"`
	FullName     string             `bson:"fullName,omitempty" json:"fullName,omitempty"`
	PhoneNumber  string             `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth  *time.Time         `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	ProfileImage string             `bson:"profileImage,omitempty" json:"avatar,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
