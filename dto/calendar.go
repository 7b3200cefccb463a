package dto

type CreateCalendarRequest struct {
	GroupID string   `json:"groupId" binding:"required"`
	Tasks   []string `json:"tasks,omitempty"`
}
