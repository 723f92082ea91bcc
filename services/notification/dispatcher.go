package notification

import (
	"context"

	"go.uber.org/zap"

	"lumibelle/models"
	"lumibelle/utils"
)

// LogDispatcher is the default NotificationService: it logs every dispatch
// instead of calling an external gateway. Swapping in an SMS provider only
// requires another implementation of the interface.
type LogDispatcher struct{}

var _ NotificationService = (*LogDispatcher)(nil)

func (d *LogDispatcher) SendAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("appointment reminder dispatched",
		zap.String("appointmentId", appt.ID),
		zap.String("customerPhone", appt.CustomerPhone),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return nil
}

func (d *LogDispatcher) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	utils.GetLogger().Info("booking confirmation dispatched",
		zap.String("appointmentId", appt.ID),
		zap.String("customerPhone", appt.CustomerPhone),
		zap.String("serviceType", appt.ServiceType))
	return nil
}
