package usecase

import "errors"

// Sentinel errors the handlers map onto HTTP statuses. The membership
// errors are distinct from not-found on purpose: "already a member"
// and "not a member" describe state conflicts on entities that exist.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrCalendarNotFound     = errors.New("calendar not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidTaskStatus = errors.New("invalid task status")

	ErrAlreadyMember     = errors.New("user is already in the group")
	ErrGroupAlreadyAdded = errors.New("group already added to user")
	ErrNotMember         = errors.New("user is not a member of the group")

	ErrEmailTaken    = errors.New("email already exists")
	ErrUsernameTaken = errors.New("username already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
