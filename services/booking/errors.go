package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a malformed date, time or required field.
	ErrInvalidInput = errors.New("invalid booking input")

	// ErrSlotUnavailable indicates the requested date/time is not in the
	// admin-opened slot set.
	ErrSlotUnavailable = errors.New("requested slot is not open for booking")

	// ErrNoStaffAvailable indicates zero active staff exist system-wide. This
	// is an operational failure, not a client input problem.
	ErrNoStaffAvailable = errors.New("no active staff members configured")

	// ErrNotFound indicates the referenced appointment does not exist.
	ErrNotFound = errors.New("appointment not found")

	// ErrInvalidTransition indicates a status change that the appointment
	// lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid appointment status transition")
)

// SlotFullError indicates every active staff member is already booked for the
// slot. Carries the observed counts for diagnostics.
type SlotFullError struct {
	Date       string
	Time       string
	TotalStaff int
	BusyStaff  int
}

func (e *SlotFullError) Error() string {
	return fmt.Sprintf("slot %s %s is fully booked (%d of %d staff busy)",
		e.Date, e.Time, e.BusyStaff, e.TotalStaff)
}

// StaffConflictError indicates the specifically requested staff member is
// busy while others remain free. The caller chose that staff member
// explicitly, so the allocator rejects instead of silently reassigning.
type StaffConflictError struct {
	StaffID   string
	FreeStaff int
}

func (e *StaffConflictError) Error() string {
	return fmt.Sprintf("staff member %s is already booked for this slot (%d others free)",
		e.StaffID, e.FreeStaff)
}

// StorageError wraps an infrastructure failure from the persistence layer,
// as opposed to a recoverable-by-caller booking outcome.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
