package booking

import (
	"context"
	"errors"
	"testing"

	"lumibelle/models"
)

func strPtr(s string) *string { return &s }

func TestRescheduleOrUpdate_ExcludesSelfFromConflictCheck(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	// Moving the appointment onto its own slot must not conflict with itself.
	patch := models.AppointmentPatch{Time: strPtr("09:00")}
	updated, err := svc.RescheduleOrUpdate(ctx, result.Appointment.ID, patch)
	if err != nil {
		t.Fatalf("RescheduleOrUpdate() onto own slot error = %v", err)
	}
	if updated.Time != "09:00" {
		t.Errorf("expected time 09:00, got %s", updated.Time)
	}
}

func TestRescheduleOrUpdate_MovesToOpenSlot(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	patch := models.AppointmentPatch{Time: strPtr("10:00")}
	updated, err := svc.RescheduleOrUpdate(ctx, result.Appointment.ID, patch)
	if err != nil {
		t.Fatalf("RescheduleOrUpdate() error = %v", err)
	}
	if updated.Time != "10:00" {
		t.Errorf("expected time 10:00, got %s", updated.Time)
	}

	// The old slot is free again.
	day, err := svc.Availability(ctx, "2025-06-01")
	if err != nil {
		t.Fatalf("Availability() error = %v", err)
	}
	for _, slot := range day.Slots {
		if slot.Time == "09:00" && slot.FreeStaff != 2 {
			t.Errorf("expected old slot fully free, got %d free", slot.FreeStaff)
		}
	}
}

func TestRescheduleOrUpdate_ClosedSlotRejected(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	patch := models.AppointmentPatch{Time: strPtr("11:00")}
	if _, err := svc.RescheduleOrUpdate(ctx, result.Appointment.ID, patch); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestRescheduleOrUpdate_TargetStaffBusy(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.RequestBooking(ctx, baseRequest()) // S2
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}
	second, err := svc.RequestBooking(ctx, baseRequest()) // S1
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	// Move the second appointment onto the first one's staff. The mover's
	// own staff is excluded from the busy set, so one member stays free and
	// the pinned-but-busy target is reported as a staff conflict.
	patch := models.AppointmentPatch{StaffID: strPtr(first.Appointment.StaffID)}
	_, err = svc.RescheduleOrUpdate(ctx, second.Appointment.ID, patch)

	var conflict *StaffConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected StaffConflictError, got %v", err)
	}
	if conflict.StaffID != first.Appointment.StaffID {
		t.Errorf("conflict staff = %s, want %s", conflict.StaffID, first.Appointment.StaffID)
	}
	if conflict.FreeStaff != 1 {
		t.Errorf("free staff = %d, want 1", conflict.FreeStaff)
	}
}

func TestRescheduleOrUpdate_PlainFieldEditSkipsAvailabilityChecks(t *testing.T) {
	svc, sched, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}

	// Close the whole day; a notes-only edit must still go through.
	delete(sched.entries, "2025-06-01")

	patch := models.AppointmentPatch{Notes: strPtr("allergic to ammonia dye")}
	updated, err := svc.RescheduleOrUpdate(ctx, result.Appointment.ID, patch)
	if err != nil {
		t.Fatalf("RescheduleOrUpdate() with plain fields error = %v", err)
	}
	if updated.Notes != "allergic to ammonia dye" {
		t.Errorf("notes not applied: %q", updated.Notes)
	}
}

func TestRescheduleOrUpdate_UnknownAppointment(t *testing.T) {
	svc, _, _, _ := newTestService()

	patch := models.AppointmentPatch{Notes: strPtr("x")}
	if _, err := svc.RescheduleOrUpdate(context.Background(), "missing", patch); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	result, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}
	id := result.Appointment.ID

	confirmed, err := svc.Confirm(ctx, id)
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Errorf("expected confirmed, got %s", confirmed.Status)
	}

	cancelled, err := svc.Cancel(ctx, id)
	if err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Status)
	}

	// A cancelled appointment cannot be confirmed or completed.
	if _, err := svc.Confirm(ctx, id); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition confirming cancelled, got %v", err)
	}
	if _, err := svc.Complete(ctx, id); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition completing cancelled, got %v", err)
	}
}

func TestCancelFreesSlotForRebooking(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	// Fill the slot completely.
	first, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}
	if _, err := svc.RequestBooking(ctx, baseRequest()); err != nil {
		t.Fatalf("setup booking failed: %v", err)
	}
	if _, err := svc.RequestBooking(ctx, baseRequest()); err == nil {
		t.Fatalf("expected full slot before cancellation")
	}

	if _, err := svc.Cancel(ctx, first.Appointment.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	result, err := svc.RequestBooking(ctx, baseRequest())
	if err != nil {
		t.Fatalf("expected rebooking after cancel, got %v", err)
	}
	if result.Appointment.StaffID != first.Appointment.StaffID {
		t.Errorf("expected freed staff %s, got %s", first.Appointment.StaffID, result.Appointment.StaffID)
	}
}

func TestStatusTransition_UnknownAppointment(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Confirm(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Confirm: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Cancel(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Cancel: expected ErrNotFound, got %v", err)
	}
}
