package models

import "time"

// Account roles.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// DefaultAvatarURL is used when no profile image is uploaded.
const DefaultAvatarURL = "https://img.freepik.com/free-vector/user-blue-gradient_78370-4692.jpg"

// Account is a patient, doctor or admin record. The three roles live in
// separate collections but share the same shape.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Image        string    `bson:"image" json:"image"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AccountUpdate carries the mutable account fields for partial updates.
// Nil fields are left untouched.
type AccountUpdate struct {
	Name     *string `json:"name,omitempty" form:"name"`
	Email    *string `json:"email,omitempty" form:"email"`
	Password *string `json:"password,omitempty" form:"password"`
	Image    *string `json:"image,omitempty" form:"image"`
}
