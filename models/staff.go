package models

import "time"

// StaffMember represents a salon employee eligible for appointment assignment.
type StaffMember struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"` // auto-assignment tie-break, 0..5
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// StaffPatch carries the updatable fields of a staff member. Nil fields are
// left unchanged, so a partial admin edit never clobbers the rest of the
// document.
type StaffPatch struct {
	Name        *string   `json:"name,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}
