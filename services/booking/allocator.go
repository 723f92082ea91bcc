package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "lumibelle/database/repository/appointment"
	scheduleRepo "lumibelle/database/repository/schedule"
	"lumibelle/models"
	"lumibelle/utils"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// commitAttempts bounds the automatic retry after a lost commit race. The
// second pass re-reads the busy set, so an auto-assigned booking can still
// land on another free staff member.
const commitAttempts = 2

// slotSnapshot is the read-phase view of a single (date, time) slot. It is an
// unlocked best-effort snapshot; the commit transaction re-validates.
type slotSnapshot struct {
	active []models.StaffMember
	free   []models.StaffMember
	busy   map[string]bool
}

// RequestBooking runs the allocation pipeline: slot-open check, busy-set
// computation, assignee resolution, atomic commit. All failures are typed
// outcomes the caller can act on; only a lost storage race is retried, once.
func (s *DefaultBookingService) RequestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()

	var lastSnap *slotSnapshot
	for attempt := 1; attempt <= commitAttempts; attempt++ {
		snap, err := s.snapshotSlot(ctx, req.Date, req.Time)
		if err != nil {
			return nil, err
		}
		lastSnap = snap

		if len(snap.free) == 0 {
			return nil, &SlotFullError{
				Date:       req.Date,
				Time:       req.Time,
				TotalStaff: len(snap.active),
				BusyStaff:  len(snap.active) - len(snap.free),
			}
		}

		assignee, autoAssigned, err := resolveAssignee(req.StaffID, snap)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		appt := &models.Appointment{
			ID:            uuid.New().String(),
			Date:          req.Date,
			Time:          req.Time,
			StaffID:       assignee.ID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			ServiceType:   req.ServiceType,
			Status:        models.StatusPending,
			Notes:         req.Notes,
			AutoAssigned:  autoAssigned,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		created, err := s.ApptRepo.CreateIfNoConflict(ctx, appt)
		if errors.Is(err, appointmentRepo.ErrConflict) {
			// Lost a race to a concurrent booking for the same key. Re-read
			// and try once more; a second loss means the slot really is gone.
			logger.Warn("booking commit lost race, retrying",
				zap.String("date", req.Date),
				zap.String("time", req.Time),
				zap.String("staffId", assignee.ID),
				zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, &StorageError{Op: "create appointment", Err: err}
		}

		s.invalidateAvailability(ctx, req.Date)
		s.sendConfirmation(ctx, created)
		s.scheduleReminder(ctx, created)

		logger.Info("appointment booked",
			zap.String("id", created.ID),
			zap.String("date", created.Date),
			zap.String("time", created.Time),
			zap.String("staffId", created.StaffID),
			zap.Bool("autoAssigned", autoAssigned))

		return &models.BookingResult{
			Appointment:  created,
			AutoAssigned: autoAssigned,
			FreeBefore:   len(snap.free),
			BusyBefore:   len(snap.active) - len(snap.free),
		}, nil
	}

	return nil, &SlotFullError{
		Date:       req.Date,
		Time:       req.Time,
		TotalStaff: len(lastSnap.active),
		BusyStaff:  len(lastSnap.active) - len(lastSnap.free),
	}
}

// snapshotSlot performs the read phase: slot-open check, active staff fetch,
// busy-set computation.
func (s *DefaultBookingService) snapshotSlot(ctx context.Context, date, timeOfDay string) (*slotSnapshot, error) {
	entry, err := s.ScheduleRepo.GetByDate(ctx, date)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return nil, ErrSlotUnavailable
	}
	if err != nil {
		return nil, &StorageError{Op: "load schedule", Err: err}
	}
	if !entry.HasSlot(timeOfDay) {
		return nil, ErrSlotUnavailable
	}

	active, err := s.StaffRepo.ListActive(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list active staff", Err: err}
	}
	if len(active) == 0 {
		return nil, ErrNoStaffAvailable
	}

	booked, err := s.ApptRepo.FindActive(ctx, date, timeOfDay)
	if err != nil {
		return nil, &StorageError{Op: "find active appointments", Err: err}
	}

	busy := make(map[string]bool, len(booked))
	for _, a := range booked {
		busy[a.StaffID] = true
	}

	free := make([]models.StaffMember, 0, len(active))
	for _, m := range active {
		if !busy[m.ID] {
			free = append(free, m)
		}
	}

	return &slotSnapshot{active: active, free: free, busy: busy}, nil
}

// resolveAssignee picks the staff member for the booking. A requested staff
// member must be free: substitution without the caller's consent is not
// allowed. An id that matches no active staff member at all is treated as
// unset and falls back to auto-assignment.
func resolveAssignee(requestedID string, snap *slotSnapshot) (*models.StaffMember, bool, error) {
	if requestedID != "" {
		for i := range snap.free {
			if snap.free[i].ID == requestedID {
				return &snap.free[i], false, nil
			}
		}
		if snap.busy[requestedID] {
			return nil, false, &StaffConflictError{StaffID: requestedID, FreeStaff: len(snap.free)}
		}
		// Unknown or inactive id: fall through to auto-assignment.
	}

	best := &snap.free[0]
	for i := 1; i < len(snap.free); i++ {
		if snap.free[i].Rating > best.Rating {
			best = &snap.free[i]
		}
	}
	return best, true, nil
}

func validateRequest(req *models.BookingRequest) error {
	if req.CustomerName == "" || req.CustomerPhone == "" || req.ServiceType == "" {
		return ErrInvalidInput
	}
	return validateSlotKey(req.Date, req.Time)
}

func validateSlotKey(date, timeOfDay string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidInput
	}
	if _, err := time.Parse(timeLayout, timeOfDay); err != nil {
		return ErrInvalidInput
	}
	return nil
}

// sendConfirmation dispatches the booking confirmation. Best effort: a
// gateway failure must not fail a committed booking.
func (s *DefaultBookingService) sendConfirmation(ctx context.Context, appt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendBookingConfirmation(ctx, appt); err != nil {
		utils.GetLogger().Warn("failed to send booking confirmation",
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}
}

// scheduleReminder enqueues the day-before reminder. Best effort: a queue
// failure must not fail a committed booking.
func (s *DefaultBookingService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	if err := s.Reminders.ScheduleReminder(ctx, appt); err != nil {
		utils.GetLogger().Warn("failed to schedule reminder",
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}
}
