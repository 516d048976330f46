package models

import "time"

// Notification is a stored message addressed to one account.
type Notification struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"userId" bson:"userId"`
	Type      string    `json:"type,omitempty" bson:"type,omitempty"`
	Title     string    `json:"title,omitempty" bson:"title,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// NotificationRequest is the payload for creating a notification.
type NotificationRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Type    string `json:"type,omitempty" validate:"max=50"`
	Title   string `json:"title,omitempty" validate:"max=200"`
	Message string `json:"message" validate:"required,max=1000"`
}
