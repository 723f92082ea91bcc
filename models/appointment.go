package models

import "time"

// Appointment statuses. Pending and confirmed count toward busy/conflict
// computation; cancelled and completed do not.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ActiveStatuses are the statuses that occupy a (date, time, staff) slot.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// Appointment is a booked slot for one customer with one staff member.
// At most one appointment with an active status may exist per
// (date, time, staff_id); the appointments collection enforces this with a
// partial unique index.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	Date          string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time          string    `bson:"time" json:"time"` // "HH:MM"
	StaffID       string    `bson:"staff_id" json:"staffId"`
	CustomerName  string    `bson:"customer_name" json:"customerName"`
	CustomerPhone string    `bson:"customer_phone" json:"customerPhone"`
	CustomerEmail string    `bson:"customer_email,omitempty" json:"customerEmail,omitempty"`
	ServiceType   string    `bson:"service_type" json:"serviceType"`
	Status        string    `bson:"status" json:"status"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	AutoAssigned  bool      `bson:"auto_assigned" json:"autoAssigned"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the appointment occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
