package schedule

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	scheduleRepo "lumibelle/database/repository/schedule"
	"lumibelle/models"
	"lumibelle/utils"
)

var (
	// ErrInvalidDate indicates a date not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid schedule date")
	// ErrInvalidSlot indicates a slot value not in HH:MM form.
	ErrInvalidSlot = errors.New("invalid time slot")
	// ErrNotFound indicates no schedule entry exists for the date.
	ErrNotFound = errors.New("schedule entry not found")
)

// ScheduleService is the admin surface for opening and closing booking days.
type ScheduleService interface {
	Upsert(ctx context.Context, date string, slots []string, isAvailable bool) (*models.ScheduleEntry, error)
	Get(ctx context.Context, date string) (*models.ScheduleEntry, error)
	ListRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error)
	Delete(ctx context.Context, date string) error
}

// DefaultScheduleService implements ScheduleService against the Mongo repo.
type DefaultScheduleService struct {
	Repo scheduleRepo.ScheduleRepository
}

var _ ScheduleService = (*DefaultScheduleService)(nil)

// Upsert replaces the schedule for a date. Slots are validated, deduplicated
// and stored in ascending order; last writer wins.
func (s *DefaultScheduleService) Upsert(ctx context.Context, date string, slots []string, isAvailable bool) (*models.ScheduleEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	normalized, err := normalizeSlots(slots)
	if err != nil {
		return nil, err
	}

	entry := &models.ScheduleEntry{
		Date:           date,
		AvailableSlots: normalized,
		IsAvailable:    isAvailable,
	}
	saved, err := s.Repo.Upsert(ctx, entry)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("schedule upserted",
		zap.String("date", date),
		zap.Int("slots", len(normalized)),
		zap.Bool("isAvailable", isAvailable))
	return saved, nil
}

// Get returns the schedule entry for a date.
func (s *DefaultScheduleService) Get(ctx context.Context, date string) (*models.ScheduleEntry, error) {
	entry, err := s.Repo.GetByDate(ctx, date)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return entry, err
}

// ListRange returns schedule entries between two dates inclusive, ascending.
func (s *DefaultScheduleService) ListRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	if _, err := time.Parse("2006-01-02", from); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		return nil, ErrInvalidDate
	}
	return s.Repo.ListRange(ctx, from, to)
}

// Delete removes the schedule entry for a date.
func (s *DefaultScheduleService) Delete(ctx context.Context, date string) error {
	err := s.Repo.DeleteByDate(ctx, date)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// normalizeSlots validates each slot as HH:MM, removes duplicates, and sorts
// ascending. Slot strings compare correctly as text because the hour is
// zero-padded.
func normalizeSlots(slots []string) ([]string, error) {
	seen := make(map[string]bool, len(slots))
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, err := time.Parse("15:04", slot); err != nil {
			return nil, ErrInvalidSlot
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		out = append(out, slot)
	}
	sort.Strings(out)
	return out, nil
}
