package dto

type CreateNotificationRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Message string `json:"message" binding:"required"`
}
