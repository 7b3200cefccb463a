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

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("SESSIONS_COLLECTION", "sessions")
	return &SessionRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	if session == nil || session.SessionID == "" || session.UserID == "" {
		utils.TrackError("database", "invalid_session_data")
		return errors.New("invalid session data: missing required fields")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database", "session_creation_failed")
		return fmt.Errorf("failed to create session in database: %w", err)
	}

	return nil
}

func (r *SessionRepo) FindActiveByUser(ctx context.Context, userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"user_id":    userID,
		"is_active":  true,
		"expires_at": bson.M{"$gt": time.Now()},
	})
	if err != nil {
		utils.TrackError("database", "session_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		utils.TrackError("database", "session_decode_failed")
		return nil, err
	}
	return sessions, nil
}

// EndUserSessions marks all of a user's sessions inactive.
func (r *SessionRepo) EndUserSessions(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"is_active":        false,
		"last_activity_at": time.Now(),
	}}

	if _, err := r.MongoCollection.UpdateMany(ctx, bson.M{"user_id": userID}, update); err != nil {
		utils.TrackError("database", "session_end_failed")
		return fmt.Errorf("failed to end sessions: %w", err)
	}
	return nil
}

// TouchUserSessions refreshes the last-activity timestamp on a user's
// active sessions.
func (r *SessionRepo) TouchUserSessions(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{"last_activity_at": time.Now()}}
	filter := bson.M{"user_id": userID, "is_active": true}

	if _, err := r.MongoCollection.UpdateMany(ctx, filter, update); err != nil {
		utils.TrackError("database", "session_touch_failed")
		return fmt.Errorf("failed to touch sessions: %w", err)
	}
	return nil
}
