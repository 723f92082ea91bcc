package scheduleRepo

import (
	"context"
	"errors"

	"lumibelle/models"
)

// ErrNotFound is returned when no schedule entry exists for a date.
var ErrNotFound = errors.New("schedule entry not found")

// ScheduleRepository is the store of per-date bookable slots. Writes are
// whole-document replacements keyed by date, so there are no read-modify-write
// hazards at this layer.
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date string) (*models.ScheduleEntry, error)
	Upsert(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error)
	ListRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error)
	DeleteByDate(ctx context.Context, date string) error
}
