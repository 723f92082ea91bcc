package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appointmentRepo "lumibelle/database/repository/appointment"
	scheduleRepo "lumibelle/database/repository/schedule"
	"lumibelle/models"
	"lumibelle/utils"
)

// RescheduleOrUpdate applies a patch to an existing appointment. When the
// patch touches the (date, time, staff) key, the availability checks from
// booking are re-run against the new slot with the appointment itself
// excluded from the conflict search.
func (s *DefaultBookingService) RescheduleOrUpdate(ctx context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPatch(appt, &patch)

	if patch.TouchesSlot() && appt.IsActive() {
		if err := validateSlotKey(appt.Date, appt.Time); err != nil {
			return nil, err
		}
		if err := s.checkSlotForStaff(ctx, appt.Date, appt.Time, appt.StaffID, appt.ID); err != nil {
			return nil, err
		}
		// Explicitly pinning a staff member clears any earlier auto-assignment.
		if patch.StaffID != nil {
			appt.AutoAssigned = false
		}
	}

	updated, err := s.ApptRepo.Update(ctx, appt)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if errors.Is(err, appointmentRepo.ErrConflict) {
		// Lost the slot to a concurrent booking between check and commit.
		return nil, &StaffConflictError{StaffID: appt.StaffID, FreeStaff: 0}
	}
	if err != nil {
		return nil, &StorageError{Op: "update appointment", Err: err}
	}

	if patch.TouchesSlot() {
		s.invalidateAvailability(ctx, updated.Date)
	}
	return updated, nil
}

// checkSlotForStaff re-runs the slot-open and busy-set checks for a specific
// staff member, with excludeID omitted from the busy set so an appointment
// never conflicts with itself on reschedule.
func (s *DefaultBookingService) checkSlotForStaff(ctx context.Context, date, timeOfDay, staffID, excludeID string) error {
	entry, err := s.ScheduleRepo.GetByDate(ctx, date)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return ErrSlotUnavailable
	}
	if err != nil {
		return &StorageError{Op: "load schedule", Err: err}
	}
	if !entry.HasSlot(timeOfDay) {
		return ErrSlotUnavailable
	}

	active, err := s.StaffRepo.ListActive(ctx)
	if err != nil {
		return &StorageError{Op: "list active staff", Err: err}
	}
	target := false
	for _, m := range active {
		if m.ID == staffID {
			target = true
			break
		}
	}
	if !target {
		return ErrNotFound
	}

	booked, err := s.ApptRepo.FindActive(ctx, date, timeOfDay)
	if err != nil {
		return &StorageError{Op: "find active appointments", Err: err}
	}
	busy := make(map[string]bool, len(booked))
	for _, a := range booked {
		if a.ID != excludeID {
			busy[a.StaffID] = true
		}
	}

	if !busy[staffID] {
		return nil
	}

	freeCount := 0
	for _, m := range active {
		if !busy[m.ID] {
			freeCount++
		}
	}
	if freeCount == 0 {
		return &SlotFullError{
			Date:       date,
			Time:       timeOfDay,
			TotalStaff: len(active),
			BusyStaff:  len(active),
		}
	}
	return &StaffConflictError{StaffID: staffID, FreeStaff: freeCount}
}

// Confirm transitions a pending (or already confirmed) appointment to
// confirmed.
func (s *DefaultBookingService) Confirm(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.StatusConfirmed)
}

// Cancel transitions an active appointment to cancelled, freeing its slot.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.StatusCancelled)
}

// Complete marks an active appointment as completed.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.Appointment, error) {
	return s.transition(ctx, id, models.StatusCompleted)
}

func (s *DefaultBookingService) transition(ctx context.Context, id, target string) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appt.IsActive() && appt.Status != target {
		return nil, ErrInvalidTransition
	}

	updated, err := s.ApptRepo.UpdateStatus(ctx, id, target)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "update status", Err: err}
	}

	s.invalidateAvailability(ctx, updated.Date)
	utils.GetLogger().Info("appointment status changed",
		zap.String("id", id),
		zap.String("status", target))
	return updated, nil
}

func (s *DefaultBookingService) getAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get appointment", Err: err}
	}
	return appt, nil
}

func applyPatch(appt *models.Appointment, patch *models.AppointmentPatch) {
	if patch.Date != nil {
		appt.Date = *patch.Date
	}
	if patch.Time != nil {
		appt.Time = *patch.Time
	}
	if patch.StaffID != nil {
		appt.StaffID = *patch.StaffID
	}
	if patch.CustomerName != nil {
		appt.CustomerName = *patch.CustomerName
	}
	if patch.CustomerPhone != nil {
		appt.CustomerPhone = *patch.CustomerPhone
	}
	if patch.CustomerEmail != nil {
		appt.CustomerEmail = *patch.CustomerEmail
	}
	if patch.ServiceType != nil {
		appt.ServiceType = *patch.ServiceType
	}
	if patch.Notes != nil {
		appt.Notes = *patch.Notes
	}
}
