package staff

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	staffRepo "lumibelle/database/repository/staff"
	"lumibelle/models"
	"lumibelle/utils"
)

var (
	// ErrNotFound indicates no staff member exists with the given id.
	ErrNotFound = errors.New("staff member not found")
	// ErrInvalidStaff indicates missing or out-of-range staff fields.
	ErrInvalidStaff = errors.New("invalid staff member")
)

// StaffService is the admin surface for managing the roster.
type StaffService interface {
	Create(ctx context.Context, name string, rating float64, specialties []string) (*models.StaffMember, error)
	Update(ctx context.Context, id string, patch models.StaffPatch) (*models.StaffMember, error)
	SetActive(ctx context.Context, id string, active bool) error
	Get(ctx context.Context, id string) (*models.StaffMember, error)
	ListAll(ctx context.Context) ([]models.StaffMember, error)
	ListActive(ctx context.Context) ([]models.StaffMember, error)
}

// DefaultStaffService implements StaffService against the Mongo repo.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

var _ StaffService = (*DefaultStaffService)(nil)

// Create adds a new active staff member to the roster.
func (s *DefaultStaffService) Create(ctx context.Context, name string, rating float64, specialties []string) (*models.StaffMember, error) {
	if name == "" || rating < 0 || rating > 5 {
		return nil, ErrInvalidStaff
	}
	member := &models.StaffMember{
		ID:          uuid.New().String(),
		Name:        name,
		IsActive:    true,
		Rating:      rating,
		Specialties: specialties,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.Repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	utils.GetLogger().Info("staff member created",
		zap.String("id", created.ID),
		zap.String("name", created.Name))
	return created, nil
}

// Update applies a partial edit to a staff member. The existing document is
// loaded first and only the fields present in the patch change, so omitted
// fields like IsActive or CreatedAt survive a routine rename.
func (s *DefaultStaffService) Update(ctx context.Context, id string, patch models.StaffPatch) (*models.StaffMember, error) {
	member, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, staffRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.Rating != nil {
		member.Rating = *patch.Rating
	}
	if patch.Specialties != nil {
		member.Specialties = *patch.Specialties
	}
	if patch.IsActive != nil {
		member.IsActive = *patch.IsActive
	}
	if member.Name == "" || member.Rating < 0 || member.Rating > 5 {
		return nil, ErrInvalidStaff
	}

	updated, err := s.Repo.Update(ctx, member)
	if errors.Is(err, staffRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return updated, err
}

// SetActive activates or deactivates a staff member. Deactivation does not
// touch existing appointments; history stays valid.
func (s *DefaultStaffService) SetActive(ctx context.Context, id string, active bool) error {
	err := s.Repo.SetActive(ctx, id, active)
	if errors.Is(err, staffRepo.ErrNotFound) {
		return ErrNotFound
	}
	if err == nil {
		utils.GetLogger().Info("staff active flag changed",
			zap.String("id", id),
			zap.Bool("active", active))
	}
	return err
}

// Get returns a staff member by id.
func (s *DefaultStaffService) Get(ctx context.Context, id string) (*models.StaffMember, error) {
	member, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, staffRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return member, err
}

// ListAll returns the full roster.
func (s *DefaultStaffService) ListAll(ctx context.Context) ([]models.StaffMember, error) {
	return s.Repo.ListAll(ctx)
}

// ListActive returns staff eligible for assignment.
func (s *DefaultStaffService) ListActive(ctx context.Context) ([]models.StaffMember, error) {
	return s.Repo.ListActive(ctx)
}
