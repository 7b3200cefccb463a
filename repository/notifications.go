package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotificationRepo(client *mongo.Client) *NotificationRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("NOTIFICATIONS_COLLECTION", "notifications")
	return &NotificationRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *NotificationRepo) CreateNotification(ctx context.Context, notification *model.Notification) error {
	timer := utils.TrackDBOperation("insert", "notifications")
	defer timer.ObserveDuration()

	if notification.UserID == "" || notification.Message == "" {
		utils.TrackError("database", "invalid_notification_data")
		return errors.New("notification user id and message required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, notification); err != nil {
		utils.TrackError("database", "notification_creation_failed")
		return fmt.Errorf("failed to add notification to database: %w", err)
	}

	return nil
}

func (r *NotificationRepo) FindByID(ctx context.Context, notificationID string) (*model.Notification, error) {
	timer := utils.TrackDBOperation("find", "notifications")
	defer timer.ObserveDuration()

	var notification model.Notification
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": notificationID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "notification_lookup_error")
		return nil, err
	}

	return &notification, nil
}

func (r *NotificationRepo) FindByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return r.findByFilter(ctx, bson.M{"user_id": userID})
}

func (r *NotificationRepo) FindUnreadByUser(ctx context.Context, userID string) ([]*model.Notification, error) {
	return r.findByFilter(ctx, bson.M{"user_id": userID, "read": false})
}

func (r *NotificationRepo) findByFilter(ctx context.Context, filter bson.M) ([]*model.Notification, error) {
	timer := utils.TrackDBOperation("find", "notifications")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "notification_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		utils.TrackError("database", "notification_decode_failed")
		return nil, err
	}
	return notifications, nil
}

// MarkRead flips the read flag to true and returns the updated
// notification, or nil when it does not exist. Marking an
// already-read notification is a no-op success.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID string) (*model.Notification, error) {
	timer := utils.TrackDBOperation("update", "notifications")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"read":       true,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": notificationID}, update)
	if err != nil {
		utils.TrackError("database", "notification_mark_read_failed")
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, notificationID)
}
