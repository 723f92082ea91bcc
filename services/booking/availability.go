package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	scheduleRepo "lumibelle/database/repository/schedule"
	"lumibelle/models"
	"lumibelle/utils"
)

// availabilityTTL bounds how stale the cached calendar view may be. The view
// is advisory only; the commit path re-validates every booking.
const availabilityTTL = 30 * time.Second

func availabilityCacheKey(date string) string {
	return "availability:" + date
}

// Availability returns the public calendar view of a date: each open slot
// with its free and busy staff counts.
func (s *DefaultBookingService) Availability(ctx context.Context, date string) (*models.DayAvailability, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, ErrInvalidInput
	}

	if cached := s.cachedAvailability(ctx, date); cached != nil {
		return cached, nil
	}

	entry, err := s.ScheduleRepo.GetByDate(ctx, date)
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return &models.DayAvailability{Date: date, IsAvailable: false}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load schedule", Err: err}
	}
	if !entry.IsAvailable {
		return &models.DayAvailability{Date: date, IsAvailable: false}, nil
	}

	active, err := s.StaffRepo.ListActive(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list active staff", Err: err}
	}

	day := &models.DayAvailability{
		Date:        date,
		IsAvailable: true,
		Slots:       make([]models.SlotAvailability, 0, len(entry.AvailableSlots)),
	}
	for _, slot := range entry.AvailableSlots {
		booked, err := s.ApptRepo.FindActive(ctx, date, slot)
		if err != nil {
			return nil, &StorageError{Op: "find active appointments", Err: err}
		}
		busy := make(map[string]bool, len(booked))
		for _, a := range booked {
			busy[a.StaffID] = true
		}
		freeCount := 0
		for _, m := range active {
			if !busy[m.ID] {
				freeCount++
			}
		}
		day.Slots = append(day.Slots, models.SlotAvailability{
			Time:      slot,
			FreeStaff: freeCount,
			BusyStaff: len(active) - freeCount,
		})
	}

	s.cacheAvailability(ctx, day)
	return day, nil
}

func (s *DefaultBookingService) cachedAvailability(ctx context.Context, date string) *models.DayAvailability {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, availabilityCacheKey(date)).Result()
	if err != nil {
		return nil
	}
	var day models.DayAvailability
	if err := json.Unmarshal([]byte(data), &day); err != nil {
		return nil
	}
	return &day
}

func (s *DefaultBookingService) cacheAvailability(ctx context.Context, day *models.DayAvailability) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(day)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, availabilityCacheKey(day.Date), data, availabilityTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability",
			zap.String("date", day.Date),
			zap.Error(err))
	}
}

// invalidateAvailability drops the cached calendar view for a date after a
// write that changes the busy set.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityCacheKey(date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("date", date),
			zap.Error(err))
	}
}
