package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"lumibelle/database"
	"lumibelle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() *MongoScheduleRepo {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(fmt.Sprintf("schedule repo: %v", err))
	}
	return repo
}

// GetByDate retrieves the schedule entry for a calendar date.
func (r *MongoScheduleRepo) GetByDate(ctx context.Context, date string) (*models.ScheduleEntry, error) {
	var entry models.ScheduleEntry
	filter := bson.M{"date": date}
	if err := r.coll.FindOne(ctx, filter).Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching schedule for date %s: %w", date, err)
	}
	return &entry, nil
}

// Upsert replaces the schedule entry for entry.Date, creating it if absent.
// Last writer wins; no merge.
func (r *MongoScheduleRepo) Upsert(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error) {
	entry.UpdatedAt = time.Now().UTC()
	filter := bson.M{"date": entry.Date}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, filter, entry, opts); err != nil {
		return nil, fmt.Errorf("error upserting schedule for date %s: %w", entry.Date, err)
	}
	return entry, nil
}

// ListRange returns schedule entries with from <= date <= to, ascending.
func (r *MongoScheduleRepo) ListRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ScheduleEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return entries, nil
}

// DeleteByDate removes the schedule entry for a date.
func (r *MongoScheduleRepo) DeleteByDate(ctx context.Context, date string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"date": date})
	if err != nil {
		return fmt.Errorf("error deleting schedule for date %s: %w", date, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
