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

type TaskRepo struct {
	MongoCollection *mongo.Collection
}

func GetTaskRepo(client *mongo.Client) *TaskRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("TASKS_COLLECTION", "tasks")
	return &TaskRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *TaskRepo) CreateTask(ctx context.Context, task *model.Task) error {
	timer := utils.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	if task.Title == "" {
		utils.TrackError("database", "invalid_task_data")
		return errors.New("task title required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, task); err != nil {
		utils.TrackError("database", "task_creation_failed")
		return fmt.Errorf("failed to add task to database: %w", err)
	}

	return nil
}

func (r *TaskRepo) FindByID(ctx context.Context, taskID string) (*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": taskID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "task_lookup_error")
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepo) FindAll(ctx context.Context) ([]*model.Task, error) {
	timer := utils.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "task_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		utils.TrackError("database", "task_decode_failed")
		return nil, err
	}
	return tasks, nil
}

// UpdateFields patches the editable task fields and returns the
// updated task, or nil when the task does not exist. Empty patch
// fields are left untouched. Status is not an editable field here; it
// has its own one-way transition.
func (r *TaskRepo) UpdateFields(ctx context.Context, taskID string, patch *model.Task) (*model.Task, error) {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	fields := bson.M{"updated_at": time.Now()}
	if patch.Title != "" {
		fields["title"] = patch.Title
	}
	if patch.Description != "" {
		fields["description"] = patch.Description
	}
	if patch.AssignedTo != "" {
		fields["assigned_to"] = patch.AssignedTo
	}
	if !patch.Date.IsZero() {
		fields["date"] = patch.Date
	}
	if !patch.DueDate.IsZero() {
		fields["due_date"] = patch.DueDate
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": taskID}, bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "task_update_failed")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, taskID)
}

// SetStatus writes the task status and returns the updated task, or
// nil when the task does not exist.
func (r *TaskRepo) SetStatus(ctx context.Context, taskID string, status model.TaskStatus) (*model.Task, error) {
	timer := utils.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		utils.TrackError("database", "task_status_update_failed")
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, taskID)
}

// DeleteTask removes the task document only; group and calendar task
// lists keep their dangling references.
func (r *TaskRepo) DeleteTask(ctx context.Context, taskID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID})
	if err != nil {
		utils.TrackError("database", "task_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
