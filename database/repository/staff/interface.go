package staffRepo

import (
	"context"
	"errors"

	"lumibelle/models"
)

// ErrNotFound is returned when no staff member exists with the given id.
var ErrNotFound = errors.New("staff member not found")

// StaffRepository is the roster of salon employees. The booking allocator only
// reads from it; mutation is admin CRUD.
type StaffRepository interface {
	ListActive(ctx context.Context) ([]models.StaffMember, error)
	ListAll(ctx context.Context) ([]models.StaffMember, error)
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	Create(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error)
	Update(ctx context.Context, staff *models.StaffMember) (*models.StaffMember, error)
	SetActive(ctx context.Context, id string, active bool) error
}
