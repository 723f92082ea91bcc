package appointmentRepo

import (
	"context"
	"errors"

	"lumibelle/models"
)

var (
	// ErrNotFound is returned when no appointment exists with the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrConflict is returned when an insert or update would violate the
	// active-status uniqueness of (date, time, staff_id).
	ErrConflict = errors.New("appointment slot already taken")
)

// AppointmentRepository is the ledger of appointments and the source of truth
// for who is busy when. The partial unique index on (date, time, staff_id)
// over active statuses is the ultimate arbiter under concurrent bookings; the
// query methods exist for good error messages, not for correctness.
type AppointmentRepository interface {
	// FindActive returns appointments with status pending or confirmed for the
	// given date and time. Used to compute the busy-staff set for a slot.
	FindActive(ctx context.Context, date, timeOfDay string) ([]models.Appointment, error)

	// FindConflict returns the active appointment holding (date, time, staffID),
	// or ErrNotFound. excludeID, when non-empty, omits that appointment from
	// the search so an appointment does not conflict with itself on reschedule.
	FindConflict(ctx context.Context, date, timeOfDay, staffID, excludeID string) (*models.Appointment, error)

	// CreateIfNoConflict inserts the appointment inside a transaction that
	// re-checks the conflict first. Returns ErrConflict if the slot was taken
	// by a concurrent writer.
	CreateIfNoConflict(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)

	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)

	// Update replaces the mutable fields of an appointment. When the update
	// moves the appointment to a new (date, time, staff_id) key, the unique
	// index still guards against a concurrent booking of the target slot.
	Update(ctx context.Context, appt *models.Appointment) (*models.Appointment, error)

	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByCustomerPhone(ctx context.Context, phone string) ([]models.Appointment, error)
	Delete(ctx context.Context, id string) error
}
