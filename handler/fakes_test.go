package handler

import (
	"context"
	"time"

	"github.com/naludev/cohabitdb/model"
)

// In-memory stores for wiring real services under httptest. They
// mirror the repository contracts, including (nil, nil) for missing
// documents.

type memUsers struct {
	byID map[string]*model.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[string]*model.User)}
}

func (m *memUsers) CreateUser(_ context.Context, user *model.User) error {
	copied := *user
	m.byID[user.UserID] = &copied
	return nil
}

func (m *memUsers) FindByID(_ context.Context, userID string) (*model.User, error) {
	u, ok := m.byID[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	copied.Groups = append([]string(nil), u.Groups...)
	return &copied, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			copied := *u
			copied.Groups = append([]string(nil), u.Groups...)
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.byID {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUsers) FindSummariesByIDs(_ context.Context, ids []string) ([]*model.UserSummary, error) {
	var summaries []*model.UserSummary
	for _, id := range ids {
		if u, ok := m.byID[id]; ok {
			summaries = append(summaries, &model.UserSummary{
				UserID:   u.UserID,
				Name:     u.Name,
				Lastname: u.Lastname,
				Username: u.Username,
				Email:    u.Email,
			})
		}
	}
	return summaries, nil
}

func (m *memUsers) SetGroups(_ context.Context, userID string, groups []string) error {
	if u, ok := m.byID[userID]; ok {
		u.Groups = append([]string(nil), groups...)
	}
	return nil
}

func (m *memUsers) SetPushToken(_ context.Context, userID, token string) error {
	if u, ok := m.byID[userID]; ok {
		u.PushToken = token
	}
	return nil
}

type memGroups struct {
	byID map[string]*model.Group
}

func newMemGroups() *memGroups {
	return &memGroups{byID: make(map[string]*model.Group)}
}

func (m *memGroups) CreateGroup(_ context.Context, group *model.Group) error {
	copied := *group
	m.byID[group.GroupID] = &copied
	return nil
}

func (m *memGroups) FindByID(_ context.Context, groupID string) (*model.Group, error) {
	g, ok := m.byID[groupID]
	if !ok {
		return nil, nil
	}
	copied := *g
	copied.Members = append([]string(nil), g.Members...)
	copied.Tasks = append([]string(nil), g.Tasks...)
	return &copied, nil
}

func (m *memGroups) FindAll(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	for id := range m.byID {
		g, _ := m.FindByID(ctx, id)
		groups = append(groups, g)
	}
	return groups, nil
}

func (m *memGroups) FindByMember(ctx context.Context, userID string) ([]*model.Group, error) {
	var groups []*model.Group
	for id, g := range m.byID {
		for _, member := range g.Members {
			if member == userID {
				copied, _ := m.FindByID(ctx, id)
				groups = append(groups, copied)
				break
			}
		}
	}
	return groups, nil
}

func (m *memGroups) SetCalendar(_ context.Context, groupID, calendarID string) error {
	if g, ok := m.byID[groupID]; ok {
		g.CalendarID = calendarID
	}
	return nil
}

func (m *memGroups) SetMembers(_ context.Context, groupID string, members []string) error {
	if g, ok := m.byID[groupID]; ok {
		g.Members = append([]string(nil), members...)
	}
	return nil
}

func (m *memGroups) AppendTask(_ context.Context, groupID, taskID string) error {
	if g, ok := m.byID[groupID]; ok {
		g.Tasks = append(g.Tasks, taskID)
	}
	return nil
}

func (m *memGroups) UpdateInfo(ctx context.Context, groupID, name, description string) (*model.Group, error) {
	g, ok := m.byID[groupID]
	if !ok {
		return nil, nil
	}
	if name != "" {
		g.Name = name
	}
	if description != "" {
		g.Description = description
	}
	return m.FindByID(ctx, groupID)
}

func (m *memGroups) DeleteGroup(_ context.Context, groupID string) (int64, error) {
	if _, ok := m.byID[groupID]; !ok {
		return 0, nil
	}
	delete(m.byID, groupID)
	return 1, nil
}

type memTasks struct {
	byID map[string]*model.Task
}

func newMemTasks() *memTasks {
	return &memTasks{byID: make(map[string]*model.Task)}
}

func (m *memTasks) CreateTask(_ context.Context, task *model.Task) error {
	copied := *task
	m.byID[task.TaskID] = &copied
	return nil
}

func (m *memTasks) FindByID(_ context.Context, taskID string) (*model.Task, error) {
	t, ok := m.byID[taskID]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (m *memTasks) FindAll(ctx context.Context) ([]*model.Task, error) {
	var tasks []*model.Task
	for id := range m.byID {
		t, _ := m.FindByID(ctx, id)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (m *memTasks) UpdateFields(ctx context.Context, taskID string, patch *model.Task) (*model.Task, error) {
	t, ok := m.byID[taskID]
	if !ok {
		return nil, nil
	}
	if patch.Title != "" {
		t.Title = patch.Title
	}
	if patch.Description != "" {
		t.Description = patch.Description
	}
	if patch.AssignedTo != "" {
		t.AssignedTo = patch.AssignedTo
	}
	if !patch.Date.IsZero() {
		t.Date = patch.Date
	}
	if !patch.DueDate.IsZero() {
		t.DueDate = patch.DueDate
	}
	return m.FindByID(ctx, taskID)
}

func (m *memTasks) SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, error) {
	t, ok := m.byID[taskID]
	if !ok {
		return nil, nil
	}
	t.Status = status
	return m.FindByID(ctx, taskID)
}

func (m *memTasks) DeleteTask(_ context.Context, taskID string) (int64, error) {
	if _, ok := m.byID[taskID]; !ok {
		return 0, nil
	}
	delete(m.byID, taskID)
	return 1, nil
}

type memCalendars struct {
	byID map[string]*model.Calendar
}

func newMemCalendars() *memCalendars {
	return &memCalendars{byID: make(map[string]*model.Calendar)}
}

func (m *memCalendars) CreateCalendar(_ context.Context, calendar *model.Calendar) error {
	copied := *calendar
	m.byID[calendar.CalendarID] = &copied
	return nil
}

func (m *memCalendars) FindByID(_ context.Context, calendarID string) (*model.Calendar, error) {
	cal, ok := m.byID[calendarID]
	if !ok {
		return nil, nil
	}
	copied := *cal
	copied.Tasks = append([]string(nil), cal.Tasks...)
	return &copied, nil
}

func (m *memCalendars) AppendTask(_ context.Context, calendarID, taskID string) error {
	if cal, ok := m.byID[calendarID]; ok {
		cal.Tasks = append(cal.Tasks, taskID)
	}
	return nil
}

type memNotifications struct {
	byID map[string]*model.Notification
}

func newMemNotifications() *memNotifications {
	return &memNotifications{byID: make(map[string]*model.Notification)}
}

func (m *memNotifications) CreateNotification(_ context.Context, notification *model.Notification) error {
	copied := *notification
	m.byID[notification.NotificationID] = &copied
	return nil
}

func (m *memNotifications) FindByID(_ context.Context, notificationID string) (*model.Notification, error) {
	n, ok := m.byID[notificationID]
	if !ok {
		return nil, nil
	}
	copied := *n
	return &copied, nil
}

func (m *memNotifications) FindByUser(_ context.Context, userID string) ([]*model.Notification, error) {
	var result []*model.Notification
	for _, n := range m.byID {
		if n.UserID == userID {
			copied := *n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *memNotifications) FindUnreadByUser(_ context.Context, userID string) ([]*model.Notification, error) {
	var result []*model.Notification
	for _, n := range m.byID {
		if n.UserID == userID && !n.Read {
			copied := *n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *memNotifications) MarkRead(_ context.Context, notificationID string) (*model.Notification, error) {
	n, ok := m.byID[notificationID]
	if !ok {
		return nil, nil
	}
	n.Read = true
	copied := *n
	return &copied, nil
}

type memSessions struct {
	records []*model.Session
}

func (m *memSessions) CreateSession(_ context.Context, session *model.Session) error {
	copied := *session
	m.records = append(m.records, &copied)
	return nil
}

func (m *memSessions) FindActiveByUser(_ context.Context, userID string) ([]*model.Session, error) {
	var result []*model.Session
	for _, s := range m.records {
		if s.UserID == userID && s.IsActive {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *memSessions) EndUserSessions(_ context.Context, userID string) error {
	for _, s := range m.records {
		if s.UserID == userID {
			s.IsActive = false
		}
	}
	return nil
}

func (m *memSessions) TouchUserSessions(_ context.Context, userID string) error {
	for _, s := range m.records {
		if s.UserID == userID && s.IsActive {
			s.LastActivityAt = time.Now()
		}
	}
	return nil
}
