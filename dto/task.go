package dto

import "time"

type CreateTaskRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	GroupID     string    `json:"groupId" binding:"required"`
	CalendarID  string    `json:"calendarId" binding:"required"`
	Status      string    `json:"status,omitempty" binding:"omitempty,oneof=pending done"`
	Date        time.Time `json:"date,omitempty"`
	DueDate     time.Time `json:"dueDate,omitempty"`
}

// UpdateTaskRequest carries the only fields a task update may touch.
// Status is excluded on purpose: it has its own one-way endpoint.
type UpdateTaskRequest struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	DueDate     time.Time `json:"dueDate,omitempty"`
}
