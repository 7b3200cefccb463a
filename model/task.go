package model

import "time"

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
)

type Task struct {
	TaskID      string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	AssignedTo  string     `bson:"assigned_to,omitempty" json:"assignedTo,omitempty"`
	GroupID     string     `bson:"group_id" json:"groupId"`
	Status      TaskStatus `bson:"status" json:"status"`
	Date        time.Time  `bson:"date,omitempty" json:"date,omitempty"`
	DueDate     time.Time  `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}
