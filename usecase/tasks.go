package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/utils"
)

// TaskService owns the task lifecycle, including the fan-out of a new
// task into its calendar's and group's task lists. The three writes
// are sequential and non-atomic: a failure after the task insert
// leaves the task absent from one or both lists, and the call fails.
type TaskService struct {
	Tasks     TaskStore
	Groups    GroupStore
	Calendars CalendarStore
}

func NewTaskService(tasks TaskStore, groups GroupStore, calendars CalendarStore) *TaskService {
	return &TaskService{Tasks: tasks, Groups: groups, Calendars: calendars}
}

// CreateTask persists the task and appends its id to the calendar's
// and the group's task lists, in that order. The calendar's group-id
// is not cross-checked against groupId, so the two may diverge; the
// referenced calendar and group only have to exist.
func (s *TaskService) CreateTask(ctx context.Context, task *model.Task, calendarID string) (*model.Task, error) {
	switch task.Status {
	case "", model.TaskPending, model.TaskDone:
	default:
		return nil, ErrInvalidTaskStatus
	}

	calendar, err := s.Calendars.FindByID(ctx, calendarID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up calendar: %w", err)
	}
	if calendar == nil {
		return nil, ErrCalendarNotFound
	}

	group, err := s.Groups.FindByID(ctx, task.GroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up group: %w", err)
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	now := time.Now()
	if task.TaskID == "" {
		task.TaskID = utils.NewID()
	}
	if task.Status == "" {
		task.Status = model.TaskPending
	}
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.Tasks.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if err := s.Calendars.AppendTask(ctx, calendarID, task.TaskID); err != nil {
		slog.Error("task created but calendar list update failed",
			"task_id", task.TaskID, "calendar_id", calendarID, "error", err)
		return nil, fmt.Errorf("failed to add task to calendar: %w", err)
	}

	if err := s.Groups.AppendTask(ctx, task.GroupID, task.TaskID); err != nil {
		slog.Error("task created but group list update failed",
			"task_id", task.TaskID, "group_id", task.GroupID, "error", err)
		return nil, fmt.Errorf("failed to add task to group: %w", err)
	}

	utils.TrackTaskOperation("create")
	slog.Info("task created", "task_id", task.TaskID, "group_id", task.GroupID, "calendar_id", calendarID)
	return task, nil
}

func (s *TaskService) TaskByID(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.Tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) AllTasks(ctx context.Context) ([]*model.Task, error) {
	return s.Tasks.FindAll(ctx)
}

// UpdateTask patches title, description, assignee and dates. Status
// is untouched here.
func (s *TaskService) UpdateTask(ctx context.Context, taskID string, patch *model.Task) (*model.Task, error) {
	task, err := s.Tasks.UpdateFields(ctx, taskID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	utils.TrackTaskOperation("update")
	return task, nil
}

// MarkTaskDone applies the one-way pending -> done transition. A task
// that is already done stays done and the call succeeds; nothing in
// this service reverses the transition.
func (s *TaskService) MarkTaskDone(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.Tasks.SetStatus(ctx, taskID, model.TaskDone)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	utils.TrackTaskOperation("complete")
	return task, nil
}

// DeleteTask removes the task document only. The task's id stays in
// its group's and calendar's lists; consumers of those lists treat a
// failed lookup as already gone.
func (s *TaskService) DeleteTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.Tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	deleted, err := s.Tasks.DeleteTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if deleted == 0 {
		return nil, ErrTaskNotFound
	}

	utils.TrackTaskOperation("delete")
	return task, nil
}
