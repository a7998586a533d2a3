package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var Genders = []string{"male", "female", "other", "prefer_not_to_say"}

// UserProfile holds the public-facing part of an account.
type UserProfile struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Age      int    `bson:"age,omitempty" json:"age,omitempty" validate:"omitempty,gte=13,lte=120"`
	Gender   string `bson:"gender,omitempty" json:"gender,omitempty" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Bio      string `bson:"bio,omitempty" json:"bio,omitempty" validate:"max=500"`
}

// PasswordReset is only present while a reset is pending. The sub-document
// is unset once the reset completes or expires.
type PasswordReset struct {
	Token     string    `bson:"token" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"-"`
}

// User is the application account document. Password handling lives in the
// external auth service; this layer only reads preferences and profile data.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Username      string             `bson:"username" json:"username" validate:"required,min=3,max=30"`
	PasswordHash  string             `bson:"passwordHash" json:"-"`
	Profile       UserProfile        `bson:"profile,omitempty" json:"profile,omitempty"`
	Preferences   []string           `bson:"preferences" json:"preferences"`
	Role          string             `bson:"role" json:"role" validate:"required,oneof=user admin"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	ResetPassword *PasswordReset     `bson:"resetPassword,omitempty" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
