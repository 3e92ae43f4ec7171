package models

import "time"

// Message statuses.
const (
	MessageStatusPending  = "pending"
	MessageStatusRead     = "read"
	MessageStatusResolved = "resolved"
)

// Message is a contact-form message with the admin's eventual response.
type Message struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	Message      string     `bson:"message" json:"message"`
	Status       string     `bson:"status" json:"status"`
	Response     string     `bson:"response" json:"response"`
	ResponseDate *time.Time `bson:"responseDate,omitempty" json:"responseDate,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// IsValidMessageStatus reports whether s is one of the allowed statuses.
func IsValidMessageStatus(s string) bool {
	switch s {
	case MessageStatusPending, MessageStatusRead, MessageStatusResolved:
		return true
	}
	return false
}
