package notification

import (
	"context"

	"lumibelle/models"
)

// NotificationService dispatches customer-facing messages. The production
// SMS/email gateway sits behind this interface; the default implementation
// only records the dispatch.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, appt *models.Appointment) error
	SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error
}
