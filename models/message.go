package models

import "time"

// Message is a chat message between two accounts.
type Message struct {
	ID         string    `json:"id" bson:"id"`
	SenderID   string    `json:"senderId" bson:"senderId"`
	ReceiverID string    `json:"receiverId" bson:"receiverId"`
	Text       string    `json:"text" bson:"text"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	Read       bool      `json:"read" bson:"read"`
}

// MessageRequest is the payload for sending a message.
type MessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required,nefield=SenderID"`
	Text       string `json:"text" validate:"required,max=2000"`
}

// InboxEntry summarises one conversation for an account.
type InboxEntry struct {
	PartnerID   string  `json:"partnerId"`
	LastMessage Message `json:"lastMessage"`
	Unread      int     `json:"unread"`
}
