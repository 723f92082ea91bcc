package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"lumibelle/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfNoConflict inserts the appointment inside a single mongo session
// transaction: re-check that no active appointment holds the same
// (date, time, staff_id) key, then insert. The transaction keeps the check
// and the insert indivisible with respect to other writers; the partial
// unique index backs it up, so a duplicate-key error from a lost race is
// reported as ErrConflict rather than leaking a raw driver error.
func (r *MongoAppointmentRepo) CreateIfNoConflict(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		switch _, err := r.FindConflict(sc, appt.Date, appt.Time, appt.StaffID, ""); {
		case err == nil:
			return ErrConflict
		case !errors.Is(err, ErrNotFound):
			return fmt.Errorf("conflict pre-check failed: %w", err)
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrConflict
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrConflict) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("appointment transaction failed: %w", err)
	}

	return appt, nil
}
