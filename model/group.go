package model

import "time"

type Group struct {
	GroupID     string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Members     []string  `bson:"members" json:"members"`
	Tasks       []string  `bson:"tasks" json:"tasks"`
	CalendarID  string    `bson:"calendar,omitempty" json:"calendar,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasMember reports whether userID is already in the member list.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}
