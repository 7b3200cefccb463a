package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
	Username string `json:"username" binding:"required,min=4,max=20"`
	Name     string `json:"name" binding:"required"`
	Lastname string `json:"lastname" binding:"required"`
}

type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	ExpoPushToken string `json:"expoPushToken,omitempty"`
}

type ResolveUsersRequest struct {
	IDs []string `json:"ids" binding:"required"`
}
