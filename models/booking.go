package models

// BookingRequest is the input to the booking allocator.
type BookingRequest struct {
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	ServiceType   string `json:"serviceType" binding:"required"`
	Notes         string `json:"notes,omitempty"`
	// StaffID pins a specific staff member. Empty means auto-assign by rating.
	StaffID string `json:"staffId,omitempty"`
}

// BookingResult is returned on a successful booking.
type BookingResult struct {
	Appointment  *Appointment `json:"appointment"`
	AutoAssigned bool         `json:"autoAssigned"`
	// Free/busy staff counts observed before the commit, for diagnostics.
	FreeBefore int `json:"freeBefore"`
	BusyBefore int `json:"busyBefore"`
}

// AppointmentPatch carries the updatable fields of an appointment. Nil fields
// are left unchanged. Changing Date, Time or StaffID re-runs the availability
// checks against the new slot.
type AppointmentPatch struct {
	Date          *string `json:"date,omitempty"`
	Time          *string `json:"time,omitempty"`
	StaffID       *string `json:"staffId,omitempty"`
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	ServiceType   *string `json:"serviceType,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// TouchesSlot reports whether the patch moves the appointment to a different
// (date, time, staff) key and therefore needs re-validation.
func (p *AppointmentPatch) TouchesSlot() bool {
	return p.Date != nil || p.Time != nil || p.StaffID != nil
}

// SlotAvailability describes one bookable time on a date.
type SlotAvailability struct {
	Time      string `json:"time"`
	FreeStaff int    `json:"freeStaff"`
	BusyStaff int    `json:"busyStaff"`
}

// DayAvailability is the public calendar view of a single date.
type DayAvailability struct {
	Date        string             `json:"date"`
	IsAvailable bool               `json:"isAvailable"`
	Slots       []SlotAvailability `json:"slots"`
}
