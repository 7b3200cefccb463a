package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/utils"
)

// NotificationService appends notification records and exposes the
// one state transition a notification has: read false -> true.
type NotificationService struct {
	Notifications NotificationStore
}

func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{Notifications: notifications}
}

func (s *NotificationService) Create(ctx context.Context, userID, notificationType, message string) (*model.Notification, error) {
	now := time.Now()
	notification := &model.Notification{
		NotificationID: utils.NewID(),
		UserID:         userID,
		Type:           notificationType,
		Read:           false,
		Message:        message,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Notifications.CreateNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

func (s *NotificationService) ForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.Notifications.FindByUser(ctx, userID)
}

func (s *NotificationService) UnreadForUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.Notifications.FindUnreadByUser(ctx, userID)
}

func (s *NotificationService) ByID(ctx context.Context, notificationID string) (*model.Notification, error) {
	notification, err := s.Notifications.FindByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up notification: %w", err)
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}

// MarkRead flips read to true. Marking an already-read notification
// succeeds and changes nothing.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) (*model.Notification, error) {
	notification, err := s.Notifications.MarkRead(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	return notification, nil
}
