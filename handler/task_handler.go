package handler

import (
	"errors"

	"github.com/naludev/cohabitdb/dto"
	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	tasks *usecase.TaskService
	users *usecase.UserService
}

func NewTaskHandler(tasks *usecase.TaskService, users *usecase.UserService) *TaskHandler {
	return &TaskHandler{tasks: tasks, users: users}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		GroupID:     req.GroupID,
		Status:      model.TaskStatus(req.Status),
		Date:        req.Date,
		DueDate:     req.DueDate,
	}

	created, err := h.tasks.CreateTask(c.Request.Context(), task, req.CalendarID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCalendarNotFound):
			utils.NotFound(c, "Calendar not found")
		case errors.Is(err, usecase.ErrGroupNotFound):
			utils.NotFound(c, "Group not found")
		case errors.Is(err, usecase.ErrInvalidTaskStatus):
			utils.BadRequest(c, "Invalid task status")
		default:
			utils.TrackError("task", "create_failed")
			utils.InternalError(c, "Failed to create task")
		}
		return
	}

	utils.Created(c, gin.H{
		"message": "Task created and added to calendar and group",
		"task":    created,
	})
}

func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.tasks.AllTasks(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to fetch tasks")
		return
	}
	utils.Success(c, tasks)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.tasks.TaskByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to fetch task")
		return
	}
	utils.Success(c, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	patch := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Date:        req.Date,
		DueDate:     req.DueDate,
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to update task")
		return
	}

	utils.Success(c, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}

func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	task, err := h.tasks.MarkTaskDone(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to update task status")
		return
	}

	utils.Success(c, gin.H{
		"message": "Task status updated to \"done\"",
		"task":    task,
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	task, err := h.tasks.DeleteTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			utils.NotFound(c, "Task not found")
			return
		}
		utils.InternalError(c, "Failed to delete task")
		return
	}

	utils.Success(c, gin.H{
		"message": "Task deleted successfully",
		"task":    task,
	})
}

// GetAssignedUser resolves the user a task is assigned to.
func (h *TaskHandler) GetAssignedUser(c *gin.Context) {
	user, err := h.users.UserByID(c.Request.Context(), c.Param("assignedTo"))
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
