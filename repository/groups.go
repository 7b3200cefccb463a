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

type GroupRepo struct {
	MongoCollection *mongo.Collection
}

func GetGroupRepo(client *mongo.Client) *GroupRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := utils.GetEnvAsString("GROUPS_COLLECTION", "groups")
	return &GroupRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

func (r *GroupRepo) CreateGroup(ctx context.Context, group *model.Group) error {
	timer := utils.TrackDBOperation("insert", "groups")
	defer timer.ObserveDuration()

	if group.Name == "" {
		utils.TrackError("database", "invalid_group_data")
		return errors.New("group name required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, group); err != nil {
		utils.TrackError("database", "group_creation_failed")
		return fmt.Errorf("failed to add group to database: %w", err)
	}

	return nil
}

func (r *GroupRepo) FindByID(ctx context.Context, groupID string) (*model.Group, error) {
	timer := utils.TrackDBOperation("find", "groups")
	defer timer.ObserveDuration()

	var group model.Group
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": groupID}).Decode(&group)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "group_lookup_error")
		return nil, err
	}

	return &group, nil
}

func (r *GroupRepo) FindAll(ctx context.Context) ([]*model.Group, error) {
	timer := utils.TrackDBOperation("find", "groups")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "group_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.Group
	if err := cursor.All(ctx, &groups); err != nil {
		utils.TrackError("database", "group_decode_failed")
		return nil, err
	}
	return groups, nil
}

// FindByMember returns the groups whose member list contains userID.
func (r *GroupRepo) FindByMember(ctx context.Context, userID string) ([]*model.Group, error) {
	timer := utils.TrackDBOperation("find", "groups")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"members": userID})
	if err != nil {
		utils.TrackError("database", "group_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []*model.Group
	if err := cursor.All(ctx, &groups); err != nil {
		utils.TrackError("database", "group_decode_failed")
		return nil, err
	}
	return groups, nil
}

// SetCalendar back-links the group's calendar. Set exactly once, at
// group creation.
func (r *GroupRepo) SetCalendar(ctx context.Context, groupID, calendarID string) error {
	timer := utils.TrackDBOperation("update", "groups")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"calendar":   calendarID,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": groupID}, update)
	if err != nil {
		utils.TrackError("database", "group_calendar_link_failed")
		return fmt.Errorf("failed to link calendar to group: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("group not found")
	}
	return nil
}

// SetMembers overwrites the group's member list. Caller does the
// read-modify-write; concurrent callers race, last writer wins.
func (r *GroupRepo) SetMembers(ctx context.Context, groupID string, members []string) error {
	timer := utils.TrackDBOperation("update", "groups")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"members":    members,
		"updated_at": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": groupID}, update)
	if err != nil {
		utils.TrackError("database", "group_members_update_failed")
		return fmt.Errorf("failed to update group members: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("group not found")
	}
	return nil
}

// AppendTask appends a task id to the group's task list.
func (r *GroupRepo) AppendTask(ctx context.Context, groupID, taskID string) error {
	timer := utils.TrackDBOperation("update", "groups")
	defer timer.ObserveDuration()

	update := bson.M{
		"$push": bson.M{"tasks": taskID},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": groupID}, update)
	if err != nil {
		utils.TrackError("database", "group_task_append_failed")
		return fmt.Errorf("failed to append task to group: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("group not found")
	}
	return nil
}

// UpdateInfo patches name and description, returning the updated
// group, or nil when the group does not exist.
func (r *GroupRepo) UpdateInfo(ctx context.Context, groupID, name, description string) (*model.Group, error) {
	timer := utils.TrackDBOperation("update", "groups")
	defer timer.ObserveDuration()

	fields := bson.M{"updated_at": time.Now()}
	if name != "" {
		fields["name"] = name
	}
	if description != "" {
		fields["description"] = description
	}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"_id": groupID}, bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "group_update_failed")
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, nil
	}

	return r.FindByID(ctx, groupID)
}

// DeleteGroup removes the group document only. Members' back-references
// and the group's calendar are left dangling on purpose; readers treat
// a failed lookup of a referenced id as already gone.
func (r *GroupRepo) DeleteGroup(ctx context.Context, groupID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "groups")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": groupID})
	if err != nil {
		utils.TrackError("database", "group_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
