package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/naludev/cohabitdb/model"
)

// fakeDB backs the in-memory store fakes. It holds copies so each
// lookup behaves like an independent document read, and can inject a
// failure for a named operation to exercise the non-atomic write
// sequences.
type fakeDB struct {
	users         map[string]model.User
	groups        map[string]model.Group
	tasks         map[string]model.Task
	calendars     map[string]model.Calendar
	notifications map[string]model.Notification
	failOn        map[string]error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:         make(map[string]model.User),
		groups:        make(map[string]model.Group),
		tasks:         make(map[string]model.Task),
		calendars:     make(map[string]model.Calendar),
		notifications: make(map[string]model.Notification),
		failOn:        make(map[string]error),
	}
}

func (db *fakeDB) fail(op string) error {
	if err, ok := db.failOn[op]; ok {
		return err
	}
	return nil
}

type fakeUsers struct{ db *fakeDB }

func (f *fakeUsers) CreateUser(_ context.Context, user *model.User) error {
	if err := f.db.fail("CreateUser"); err != nil {
		return err
	}
	f.db.users[user.UserID] = *user
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, userID string) (*model.User, error) {
	u, ok := f.db.users[userID]
	if !ok {
		return nil, nil
	}
	copied := u
	copied.Groups = append([]string(nil), u.Groups...)
	return &copied, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.db.users {
		if u.Email == email {
			copied := u
			copied.Groups = append([]string(nil), u.Groups...)
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.db.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindSummariesByIDs(_ context.Context, ids []string) ([]*model.UserSummary, error) {
	var summaries []*model.UserSummary
	for _, id := range ids {
		if u, ok := f.db.users[id]; ok {
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

func (f *fakeUsers) SetGroups(_ context.Context, userID string, groups []string) error {
	if err := f.db.fail("SetGroups"); err != nil {
		return err
	}
	u, ok := f.db.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.Groups = append([]string(nil), groups...)
	u.UpdatedAt = time.Now()
	f.db.users[userID] = u
	return nil
}

func (f *fakeUsers) SetPushToken(_ context.Context, userID, token string) error {
	u, ok := f.db.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.PushToken = token
	f.db.users[userID] = u
	return nil
}

type fakeGroups struct{ db *fakeDB }

func (f *fakeGroups) CreateGroup(_ context.Context, group *model.Group) error {
	if err := f.db.fail("CreateGroup"); err != nil {
		return err
	}
	f.db.groups[group.GroupID] = *group
	return nil
}

func (f *fakeGroups) FindByID(_ context.Context, groupID string) (*model.Group, error) {
	g, ok := f.db.groups[groupID]
	if !ok {
		return nil, nil
	}
	copied := g
	copied.Members = append([]string(nil), g.Members...)
	copied.Tasks = append([]string(nil), g.Tasks...)
	return &copied, nil
}

func (f *fakeGroups) FindAll(ctx context.Context) ([]*model.Group, error) {
	var groups []*model.Group
	for id := range f.db.groups {
		g, _ := f.FindByID(ctx, id)
		groups = append(groups, g)
	}
	return groups, nil
}

func (f *fakeGroups) FindByMember(ctx context.Context, userID string) ([]*model.Group, error) {
	var groups []*model.Group
	for id, g := range f.db.groups {
		for _, m := range g.Members {
			if m == userID {
				copied, _ := f.FindByID(ctx, id)
				groups = append(groups, copied)
				break
			}
		}
	}
	return groups, nil
}

func (f *fakeGroups) SetCalendar(_ context.Context, groupID, calendarID string) error {
	if err := f.db.fail("SetCalendar"); err != nil {
		return err
	}
	g, ok := f.db.groups[groupID]
	if !ok {
		return errors.New("group not found")
	}
	g.CalendarID = calendarID
	g.UpdatedAt = time.Now()
	f.db.groups[groupID] = g
	return nil
}

func (f *fakeGroups) SetMembers(_ context.Context, groupID string, members []string) error {
	if err := f.db.fail("SetMembers"); err != nil {
		return err
	}
	g, ok := f.db.groups[groupID]
	if !ok {
		return errors.New("group not found")
	}
	g.Members = append([]string(nil), members...)
	g.UpdatedAt = time.Now()
	f.db.groups[groupID] = g
	return nil
}

func (f *fakeGroups) AppendTask(_ context.Context, groupID, taskID string) error {
	if err := f.db.fail("AppendGroupTask"); err != nil {
		return err
	}
	g, ok := f.db.groups[groupID]
	if !ok {
		return errors.New("group not found")
	}
	g.Tasks = append(g.Tasks, taskID)
	g.UpdatedAt = time.Now()
	f.db.groups[groupID] = g
	return nil
}

func (f *fakeGroups) UpdateInfo(ctx context.Context, groupID, name, description string) (*model.Group, error) {
	g, ok := f.db.groups[groupID]
	if !ok {
		return nil, nil
	}
	if name != "" {
		g.Name = name
	}
	if description != "" {
		g.Description = description
	}
	g.UpdatedAt = time.Now()
	f.db.groups[groupID] = g
	return f.FindByID(ctx, groupID)
}

func (f *fakeGroups) DeleteGroup(_ context.Context, groupID string) (int64, error) {
	if _, ok := f.db.groups[groupID]; !ok {
		return 0, nil
	}
	delete(f.db.groups, groupID)
	return 1, nil
}

type fakeTasks struct{ db *fakeDB }

func (f *fakeTasks) CreateTask(_ context.Context, task *model.Task) error {
	if err := f.db.fail("CreateTask"); err != nil {
		return err
	}
	f.db.tasks[task.TaskID] = *task
	return nil
}

func (f *fakeTasks) FindByID(_ context.Context, taskID string) (*model.Task, error) {
	t, ok := f.db.tasks[taskID]
	if !ok {
		return nil, nil
	}
	copied := t
	return &copied, nil
}

func (f *fakeTasks) FindAll(ctx context.Context) ([]*model.Task, error) {
	var tasks []*model.Task
	for id := range f.db.tasks {
		t, _ := f.FindByID(ctx, id)
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (f *fakeTasks) UpdateFields(ctx context.Context, taskID string, patch *model.Task) (*model.Task, error) {
	t, ok := f.db.tasks[taskID]
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
	t.UpdatedAt = time.Now()
	f.db.tasks[taskID] = t
	return f.FindByID(ctx, taskID)
}

func (f *fakeTasks) SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, error) {
	t, ok := f.db.tasks[taskID]
	if !ok {
		return nil, nil
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	f.db.tasks[taskID] = t
	return f.FindByID(ctx, taskID)
}

func (f *fakeTasks) DeleteTask(_ context.Context, taskID string) (int64, error) {
	if _, ok := f.db.tasks[taskID]; !ok {
		return 0, nil
	}
	delete(f.db.tasks, taskID)
	return 1, nil
}

type fakeCalendars struct{ db *fakeDB }

func (f *fakeCalendars) CreateCalendar(_ context.Context, calendar *model.Calendar) error {
	if err := f.db.fail("CreateCalendar"); err != nil {
		return err
	}
	f.db.calendars[calendar.CalendarID] = *calendar
	return nil
}

func (f *fakeCalendars) FindByID(_ context.Context, calendarID string) (*model.Calendar, error) {
	cal, ok := f.db.calendars[calendarID]
	if !ok {
		return nil, nil
	}
	copied := cal
	copied.Tasks = append([]string(nil), cal.Tasks...)
	return &copied, nil
}

func (f *fakeCalendars) AppendTask(_ context.Context, calendarID, taskID string) error {
	if err := f.db.fail("AppendCalendarTask"); err != nil {
		return err
	}
	cal, ok := f.db.calendars[calendarID]
	if !ok {
		return errors.New("calendar not found")
	}
	cal.Tasks = append(cal.Tasks, taskID)
	cal.UpdatedAt = time.Now()
	f.db.calendars[calendarID] = cal
	return nil
}

type fakeNotifications struct{ db *fakeDB }

func (f *fakeNotifications) CreateNotification(_ context.Context, notification *model.Notification) error {
	if err := f.db.fail("CreateNotification"); err != nil {
		return err
	}
	f.db.notifications[notification.NotificationID] = *notification
	return nil
}

func (f *fakeNotifications) FindByID(_ context.Context, notificationID string) (*model.Notification, error) {
	n, ok := f.db.notifications[notificationID]
	if !ok {
		return nil, nil
	}
	copied := n
	return &copied, nil
}

func (f *fakeNotifications) FindByUser(_ context.Context, userID string) ([]*model.Notification, error) {
	var result []*model.Notification
	for _, n := range f.db.notifications {
		if n.UserID == userID {
			copied := n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeNotifications) FindUnreadByUser(_ context.Context, userID string) ([]*model.Notification, error) {
	var result []*model.Notification
	for _, n := range f.db.notifications {
		if n.UserID == userID && !n.Read {
			copied := n
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeNotifications) MarkRead(_ context.Context, notificationID string) (*model.Notification, error) {
	n, ok := f.db.notifications[notificationID]
	if !ok {
		return nil, nil
	}
	n.Read = true
	n.UpdatedAt = time.Now()
	f.db.notifications[notificationID] = n
	copied := n
	return &copied, nil
}
