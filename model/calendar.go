package model

import "time"

type Calendar struct {
	CalendarID string    `bson:"_id" json:"id"`
	GroupID    string    `bson:"group_id" json:"groupId"`
	Tasks      []string  `bson:"tasks" json:"tasks"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}
