package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/utils"
)

// GroupService keeps the User, Group and Calendar documents mutually
// consistent. Each multi-document operation is a bare sequence of
// independent writes in a fixed order with no transaction: the group
// side always commits before the user side, and a failure between the
// two leaves a documented inconsistency window.
type GroupService struct {
	Groups    GroupStore
	Users     UserStore
	Calendars CalendarStore
}

func NewGroupService(groups GroupStore, users UserStore, calendars CalendarStore) *GroupService {
	return &GroupService{Groups: groups, Users: users, Calendars: calendars}
}

// CreateGroup persists a new group together with its calendar. The
// two are created as a pair: group first, then calendar referencing
// the group, then the group patched with the calendar's id. If the
// back-link write fails after the calendar was created, the group is
// left without a calendar id and the whole call fails.
func (s *GroupService) CreateGroup(ctx context.Context, name, description string) (*model.Group, error) {
	now := time.Now()
	group := &model.Group{
		GroupID:     utils.NewID(),
		Name:        name,
		Description: description,
		Members:     []string{},
		Tasks:       []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Groups.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	calendar := &model.Calendar{
		CalendarID: utils.NewID(),
		GroupID:    group.GroupID,
		Tasks:      []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Calendars.CreateCalendar(ctx, calendar); err != nil {
		return nil, fmt.Errorf("failed to create calendar for group %s: %w", group.GroupID, err)
	}

	if err := s.Groups.SetCalendar(ctx, group.GroupID, calendar.CalendarID); err != nil {
		return nil, fmt.Errorf("failed to link calendar to group %s: %w", group.GroupID, err)
	}
	group.CalendarID = calendar.CalendarID

	utils.TrackGroupOperation("create")
	slog.Info("group created", "group_id", group.GroupID, "calendar_id", calendar.CalendarID)
	return group, nil
}

// AddMember adds the user to the group and the group to the user.
// The group is resolved before the user, so a missing group wins when
// both are gone. Both sides' current membership is validated before
// either write to narrow the window in which the two documents
// disagree; the group side then commits first, with no rollback if the
// user side fails.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID string) (*model.Group, *model.User, error) {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	return s.addMember(ctx, group, user)
}

// AddMemberByEmail resolves the user by email before adding them.
func (s *GroupService) AddMemberByEmail(ctx context.Context, groupID, email string) (*model.Group, *model.User, error) {
	group, err := s.findGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	return s.addMember(ctx, group, user)
}

func (s *GroupService) findGroup(ctx context.Context, groupID string) (*model.Group, error) {
	group, err := s.Groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up group: %w", err)
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

func (s *GroupService) addMember(ctx context.Context, group *model.Group, user *model.User) (*model.Group, *model.User, error) {
	groupID := group.GroupID

	if group.HasMember(user.UserID) {
		return nil, nil, ErrAlreadyMember
	}
	for _, id := range user.Groups {
		if id == groupID {
			return nil, nil, ErrGroupAlreadyAdded
		}
	}

	// group side first; no rollback if the user side fails below
	group.Members = append(group.Members, user.UserID)
	if err := s.Groups.SetMembers(ctx, groupID, group.Members); err != nil {
		return nil, nil, fmt.Errorf("failed to add member to group: %w", err)
	}

	user.Groups = append(user.Groups, groupID)
	if err := s.Users.SetGroups(ctx, user.UserID, user.Groups); err != nil {
		slog.Error("group updated but user back-reference failed",
			"group_id", groupID, "user_id", user.UserID, "error", err)
		return nil, nil, fmt.Errorf("failed to add group to user: %w", err)
	}

	utils.TrackGroupOperation("add_member")
	slog.Info("member added to group", "group_id", groupID, "user_id", user.UserID)
	return group, user, nil
}

// RemoveMember filters the user out of the group and the group out of
// the user, group side first.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, userID string) (*model.Group, *model.User, error) {
	group, err := s.Groups.FindByID(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up group: %w", err)
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if !group.HasMember(userID) {
		return nil, nil, ErrNotMember
	}

	members := make([]string, 0, len(group.Members))
	for _, id := range group.Members {
		if id != userID {
			members = append(members, id)
		}
	}
	group.Members = members
	if err := s.Groups.SetMembers(ctx, groupID, members); err != nil {
		return nil, nil, fmt.Errorf("failed to remove member from group: %w", err)
	}

	groups := make([]string, 0, len(user.Groups))
	for _, id := range user.Groups {
		if id != groupID {
			groups = append(groups, id)
		}
	}
	user.Groups = groups
	if err := s.Users.SetGroups(ctx, userID, groups); err != nil {
		slog.Error("group updated but user back-reference failed",
			"group_id", groupID, "user_id", userID, "error", err)
		return nil, nil, fmt.Errorf("failed to remove group from user: %w", err)
	}

	utils.TrackGroupOperation("remove_member")
	return group, user, nil
}

func (s *GroupService) GroupByID(ctx context.Context, groupID string) (*model.Group, error) {
	return s.findGroup(ctx, groupID)
}

func (s *GroupService) AllGroups(ctx context.Context) ([]*model.Group, error) {
	return s.Groups.FindAll(ctx)
}

// GroupsForUser returns the groups whose member list contains the
// user. The user must exist; an empty result is not an error here,
// the handler decides how to report it.
func (s *GroupService) GroupsForUser(ctx context.Context, userID string) ([]*model.Group, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.Groups.FindByMember(ctx, userID)
}

// ResolveUsers maps a list of user ids to public summaries. Ids that
// reference deleted users are silently skipped; a reference to a gone
// entity means "already gone", not corruption.
func (s *GroupService) ResolveUsers(ctx context.Context, ids []string) ([]*model.UserSummary, error) {
	return s.Users.FindSummariesByIDs(ctx, ids)
}

func (s *GroupService) UpdateGroup(ctx context.Context, groupID, name, description string) (*model.Group, error) {
	group, err := s.Groups.UpdateInfo(ctx, groupID, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// DeleteGroup removes the group document and nothing else: the
// calendar, the tasks and the members' back-references all keep
// dangling ids. Readers of those lists tolerate references to deleted
// entities.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	deleted, err := s.Groups.DeleteGroup(ctx, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if deleted == 0 {
		return ErrGroupNotFound
	}

	utils.TrackGroupOperation("delete")
	return nil
}
