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

type CalendarRepo struct {
	MongoCollection *mongo.Collection
}

func GetCalendarRepo(client *mongo.Client) *CalendarRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("CALENDARS_COLLECTION", "calendars")
	return &CalendarRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *CalendarRepo) CreateCalendar(ctx context.Context, calendar *model.Calendar) error {
	timer := utils.TrackDBOperation("insert", "calendars")
	defer timer.ObserveDuration()

	if calendar.GroupID == "" {
		utils.TrackError("database", "invalid_calendar_data")
		return errors.New("calendar group id required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, calendar); err != nil {
		utils.TrackError("database", "calendar_creation_failed")
		return fmt.Errorf("failed to add calendar to database: %w", err)
	}

	return nil
}

func (r *CalendarRepo) FindByID(ctx context.Context, calendarID string) (*model.Calendar, error) {
	timer := utils.TrackDBOperation("find", "calendars")
	defer timer.ObserveDuration()

	var calendar model.Calendar
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": calendarID}).Decode(&calendar)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "calendar_lookup_error")
		return nil, err
	}

	return &calendar, nil
}

// AppendTask appends a task id to the calendar's task list.
func (r *CalendarRepo) AppendTask(ctx context.Context, calendarID, taskID string) error {
	timer := utils.TrackDBOperation("update", "calendars")
	defer timer.ObserveDuration()

	update := bson.M{
		"$push": bson.M{"tasks": taskID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": calendarID}, update)
	if err != nil {
		utils.TrackError("database", "calendar_task_append_failed")
		return fmt.Errorf("failed to append task to calendar: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("calendar not found")
	}
	return nil
}
