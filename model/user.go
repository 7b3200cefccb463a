package model

import "time"

type User struct {
	UserID        string    `bson:"_id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	Password      string    `bson:"password" json:"-"` // argon2 digest, never returned
	Username      string    `bson:"username" json:"username"`
	Name          string    `bson:"name" json:"name"`
	Lastname      string    `bson:"lastname" json:"lastname"`
	Groups        []string  `bson:"groups" json:"groups"`
	Notifications []string  `bson:"notifications" json:"notifications"`
	PushToken     string    `bson:"push_token,omitempty" json:"pushToken,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserSummary is the projection returned by bulk user lookups.
type UserSummary struct {
	UserID   string `bson:"_id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Lastname string `bson:"lastname" json:"lastname"`
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
}
