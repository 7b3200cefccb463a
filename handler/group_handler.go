package handler

import (
	"errors"

	"github.com/naludev/cohabitdb/dto"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groups *usecase.GroupService
}

func NewGroupHandler(groups *usecase.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Group name is required")
		return
	}

	group, err := h.groups.CreateGroup(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		utils.TrackError("group", "create_failed")
		utils.InternalError(c, "Failed to create group")
		return
	}

	utils.Created(c, group)
}

func (h *GroupHandler) GetAllGroups(c *gin.Context) {
	groups, err := h.groups.AllGroups(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to fetch groups")
		return
	}
	utils.Success(c, groups)
}

func (h *GroupHandler) GetGroupByID(c *gin.Context) {
	group, err := h.groups.GroupByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrGroupNotFound) {
			utils.NotFound(c, "Group not found")
			return
		}
		utils.InternalError(c, "Failed to fetch group")
		return
	}
	utils.Success(c, group)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	group, err := h.groups.UpdateGroup(c.Request.Context(), c.Param("id"), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrGroupNotFound) {
			utils.NotFound(c, "Group not found")
			return
		}
		utils.InternalError(c, "Failed to update group")
		return
	}
	utils.Success(c, group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	err := h.groups.DeleteGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrGroupNotFound) {
			utils.NotFound(c, "Group not found")
			return
		}
		utils.InternalError(c, "Failed to delete group")
		return
	}
	utils.Success(c, gin.H{"message": "Group deleted"})
}

func (h *GroupHandler) AddUserToGroup(c *gin.Context) {
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "User id is required")
		return
	}

	group, user, err := h.groups.AddMember(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		h.respondMembershipError(c, err)
		return
	}

	utils.Success(c, gin.H{"group": group, "user": user})
}

func (h *GroupHandler) AddUserToGroupByEmail(c *gin.Context) {
	var req dto.AddMemberByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email is required")
		return
	}

	group, user, err := h.groups.AddMemberByEmail(c.Request.Context(), c.Param("id"), req.Email)
	if err != nil {
		h.respondMembershipError(c, err)
		return
	}

	utils.Success(c, gin.H{"group": group, "user": user})
}

func (h *GroupHandler) RemoveUserFromGroup(c *gin.Context) {
	group, user, err := h.groups.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userId"))
	if err != nil {
		h.respondMembershipError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"message": "User removed from group successfully",
		"group":   group,
		"user":    user,
	})
}

func (h *GroupHandler) GetGroupsByUserID(c *gin.Context) {
	groups, err := h.groups.GroupsForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.InternalError(c, "Failed to fetch groups")
		return
	}

	if len(groups) == 0 {
		utils.NotFound(c, "No groups found for this user")
		return
	}
	utils.Success(c, groups)
}

func (h *GroupHandler) GetUsersByIDs(c *gin.Context) {
	var req dto.ResolveUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid input. Expecting an array of IDs.")
		return
	}

	users, err := h.groups.ResolveUsers(c.Request.Context(), req.IDs)
	if err != nil {
		utils.InternalError(c, "Failed to fetch users")
		return
	}

	if len(users) == 0 {
		utils.NotFound(c, "No users found")
		return
	}
	utils.Success(c, users)
}

func (h *GroupHandler) respondMembershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrGroupNotFound):
		utils.NotFound(c, "Group not found")
	case errors.Is(err, usecase.ErrUserNotFound):
		utils.NotFound(c, "User not found")
	case errors.Is(err, usecase.ErrAlreadyMember):
		utils.BadRequest(c, "User is already in the group")
	case errors.Is(err, usecase.ErrGroupAlreadyAdded):
		utils.BadRequest(c, "Group already added to user")
	case errors.Is(err, usecase.ErrNotMember):
		utils.BadRequest(c, "User is not a member of the group")
	default:
		utils.TrackError("group", "membership_update_failed")
		utils.InternalError(c, "Server error")
	}
}
