package appointmentRepo

import (
	"context"
	"fmt"

	"lumibelle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindActive returns appointments with an active status for the given slot,
// in insertion order.
func (r *MongoAppointmentRepo) FindActive(ctx context.Context, date, timeOfDay string) ([]models.Appointment, error) {
	filter := bson.M{
		"date":   date,
		"time":   timeOfDay,
		"status": bson.M{"$in": models.ActiveStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding active appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding active appointments: %w", err)
	}
	return appts, nil
}

// FindConflict returns the active appointment holding the exact
// (date, time, staffID) key, or ErrNotFound when the slot is free.
func (r *MongoAppointmentRepo) FindConflict(ctx context.Context, date, timeOfDay, staffID, excludeID string) (*models.Appointment, error) {
	filter := bson.M{
		"date":     date,
		"time":     timeOfDay,
		"staff_id": staffID,
		"status":   bson.M{"$in": models.ActiveStatuses},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding conflicting appointment: %w", err)
	}
	return &appt, nil
}
