package staffRepo

import (
	"context"
	"fmt"

	"lumibelle/database"
	"lumibelle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() *MongoStaffRepo {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoStaffRepo{
		coll: db.Collection("staff"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(fmt.Sprintf("staff repo: %v", err))
	}
	return repo
}

// ListActive returns all staff members eligible for assignment, in a stable
// order (creation time, then id) so auto-assignment tie-breaks are
// deterministic.
func (r *MongoStaffRepo) ListActive(ctx context.Context) ([]models.StaffMember, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

// ListAll returns every staff member, active or not.
func (r *MongoStaffRepo) ListAll(ctx context.Context) ([]models.StaffMember, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoStaffRepo) list(ctx context.Context, filter bson.M) ([]models.StaffMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.StaffMember
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

// GetByID retrieves a staff member by id.
func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	var staff models.StaffMember
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching staff member %s: %w", id, err)
	}
	return &staff, nil
}

// Create inserts a new staff member.
func (r *MongoStaffRepo) Create(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error) {
	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return nil, fmt.Errorf("error creating staff member: %w", err)
	}
	return staff, nil
}

// Update replaces the staff document with the given id.
func (r *MongoStaffRepo) Update(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": staff.ID}, staff)
	if err != nil {
		return nil, fmt.Errorf("error updating staff member %s: %w", staff.ID, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return staff, nil
}

// SetActive toggles whether a staff member participates in assignment.
func (r *MongoStaffRepo) SetActive(ctx context.Context, id string, active bool) error {
	update := bson.M{"$set": bson.M{"is_active": active}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating active flag for staff member %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
