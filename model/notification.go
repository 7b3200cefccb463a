package model

import "time"

type Notification struct {
	NotificationID string    `bson:"_id" json:"id"`
	UserID         string    `bson:"user_id" json:"userId"`
	Type           string    `bson:"type" json:"type"`
	Read           bool      `bson:"read" json:"read"`
	Message        string    `bson:"message" json:"message"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
