package booking

import (
	"context"

	"github.com/go-redis/redis/v8"

	appointmentRepo "lumibelle/database/repository/appointment"
	scheduleRepo "lumibelle/database/repository/schedule"
	staffRepo "lumibelle/database/repository/staff"
	"lumibelle/models"
	"lumibelle/services/notification"
)

// BookingService is the allocator: it decides which staff member serves a
// requested slot and commits the appointment atomically.
type BookingService interface {
	RequestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
	RescheduleOrUpdate(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error)
	Confirm(ctx context.Context, id string) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) (*models.Appointment, error)
	Complete(ctx context.Context, id string) (*models.Appointment, error)
	Availability(ctx context.Context, date string) (*models.DayAvailability, error)
}

// ReminderScheduler enqueues a reminder for a committed appointment.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
}

// DefaultBookingService is the production allocator wired against the Mongo
// repositories. Cache, Reminders and Notifier are optional; a nil Cache skips
// availability caching, a nil Reminders skips reminder scheduling, and a nil
// Notifier skips confirmation dispatch.
type DefaultBookingService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	StaffRepo    staffRepo.StaffRepository
	ApptRepo     appointmentRepo.AppointmentRepository
	Reminders    ReminderScheduler
	Notifier     notification.NotificationService
	Cache        *redis.Client
}

var _ BookingService = (*DefaultBookingService)(nil)
