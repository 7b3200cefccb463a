package handler

import (
	"errors"

	"github.com/naludev/cohabitdb/dto"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *usecase.UserService
}

func NewUserHandler(users *usecase.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := h.users.Register(c.Request.Context(),
		req.Email, req.Password, req.Username, req.Name, req.Lastname)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.Conflict(c, "Email already exists")
		case errors.Is(err, usecase.ErrUsernameTaken):
			utils.Conflict(c, "Username already exists")
		default:
			utils.TrackError("user", "registration_failed")
			utils.InternalError(c, "Failed to register user")
		}
		return
	}

	utils.Created(c, user)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.users.UserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	utils.Success(c, user)
}
