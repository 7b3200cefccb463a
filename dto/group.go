package dto

type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type UpdateGroupRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type AddMemberByEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}
