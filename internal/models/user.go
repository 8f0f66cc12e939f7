package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `bson:"id" json:"id"`
	Email       string    `bson:"email" json:"email" validate:"required,email"`
	FullName    string    `bson:"full_name" json:"full_name" validate:"required"`
	Password    string    `bson:"-" json:"password,omitempty"`
	PhoneNumber string    `bson:"phone_number" json:"phone_number"`
	IsVerified  bool      `bson:"is_verified" json:"is_verified"`
	Rating      float64   `bson:"rating" json:"rating"`
	ReviewCount int       `bson:"review_count" json:"review_count"`
	JoinedDate  time.Time `bson:"joined_date" json:"joined_date"`
	Avatar      string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
