package usecase

import (
	"context"

	"github.com/naludev/cohabitdb/model"
)

// Store interfaces consumed by the services. The repository package
// satisfies them against MongoDB; tests satisfy them in memory.
// Lookups return (nil, nil) when the document does not exist.

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindSummariesByIDs(ctx context.Context, ids []string) ([]*model.UserSummary, error)
	SetGroups(ctx context.Context, userID string, groups []string) error
	SetPushToken(ctx context.Context, userID, token string) error
}

type GroupStore interface {
	CreateGroup(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, groupID string) (*model.Group, error)
	FindAll(ctx context.Context) ([]*model.Group, error)
	FindByMember(ctx context.Context, userID string) ([]*model.Group, error)
	SetCalendar(ctx context.Context, groupID, calendarID string) error
	SetMembers(ctx context.Context, groupID string, members []string) error
	AppendTask(ctx context.Context, groupID, taskID string) error
	UpdateInfo(ctx context.Context, groupID, name, description string) (*model.Group, error)
	DeleteGroup(ctx context.Context, groupID string) (int64, error)
}

type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, taskID string) (*model.Task, error)
	FindAll(ctx context.Context) ([]*model.Task, error)
	UpdateFields(ctx context.Context, taskID string, patch *model.Task) (*model.Task, error)
	SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, error)
	DeleteTask(ctx context.Context, taskID string) (int64, error)
}

type CalendarStore interface {
	CreateCalendar(ctx context.Context, calendar *model.Calendar) error
	FindByID(ctx context.Context, calendarID string) (*model.Calendar, error)
	AppendTask(ctx context.Context, calendarID, taskID string) error
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	FindByID(ctx context.Context, notificationID string) (*model.Notification, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	FindUnreadByUser(ctx context.Context, userID string) ([]*model.Notification, error)
	MarkRead(ctx context.Context, notificationID string) (*model.Notification, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *model.Session) error
	FindActiveByUser(ctx context.Context, userID string) ([]*model.Session, error)
	EndUserSessions(ctx context.Context, userID string) error
	TouchUserSessions(ctx context.Context, userID string) error
}
