package booking

import (
	"context"
	"sync"

	appointmentRepo "lumibelle/database/repository/appointment"
	scheduleRepo "lumibelle/database/repository/schedule"
	staffRepo "lumibelle/database/repository/staff"
	"lumibelle/models"
	"lumibelle/services/notification"
)

type fakeScheduleRepo struct {
	entries map[string]models.ScheduleEntry
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{entries: make(map[string]models.ScheduleEntry)}
}

func (f *fakeScheduleRepo) GetByDate(ctx context.Context, date string) (*models.ScheduleEntry, error) {
	entry, ok := f.entries[date]
	if !ok {
		return nil, scheduleRepo.ErrNotFound
	}
	return &entry, nil
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, entry *models.ScheduleEntry) (*models.ScheduleEntry, error) {
	f.entries[entry.Date] = *entry
	return entry, nil
}

func (f *fakeScheduleRepo) ListRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	var out []models.ScheduleEntry
	for date, entry := range f.entries {
		if date >= from && date <= to {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) DeleteByDate(ctx context.Context, date string) error {
	if _, ok := f.entries[date]; !ok {
		return scheduleRepo.ErrNotFound
	}
	delete(f.entries, date)
	return nil
}

type fakeStaffRepo struct {
	members []models.StaffMember
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]models.StaffMember, error) {
	var out []models.StaffMember
	for _, m := range f.members {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) ListAll(ctx context.Context) ([]models.StaffMember, error) {
	return append([]models.StaffMember(nil), f.members...), nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	for i := range f.members {
		if f.members[i].ID == id {
			m := f.members[i]
			return &m, nil
		}
	}
	return nil, staffRepo.ErrNotFound
}

func (f *fakeStaffRepo) Create(ctx context.Context, m *models.StaffMember) (*models.StaffMember, error) {
	f.members = append(f.members, *m)
	return m, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, m *models.StaffMember) (*models.StaffMember, error) {
	for i := range f.members {
		if f.members[i].ID == m.ID {
			f.members[i] = *m
			return m, nil
		}
	}
	return nil, staffRepo.ErrNotFound
}

func (f *fakeStaffRepo) SetActive(ctx context.Context, id string, active bool) error {
	for i := range f.members {
		if f.members[i].ID == id {
			f.members[i].IsActive = active
			return nil
		}
	}
	return staffRepo.ErrNotFound
}

// fakeApptRepo mirrors the ledger semantics in memory, including the
// active-status uniqueness check inside CreateIfNoConflict. beforeCreate,
// when set, runs once at the start of the next CreateIfNoConflict call and
// can simulate a concurrent writer sneaking in between read and commit.
type fakeApptRepo struct {
	mu           sync.Mutex
	appts        []models.Appointment
	beforeCreate func()
}

func (f *fakeApptRepo) insert(appt models.Appointment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appts = append(f.appts, appt)
}

func (f *fakeApptRepo) hasActiveConflict(date, timeOfDay, staffID, excludeID string) bool {
	for i := range f.appts {
		a := &f.appts[i]
		if a.Date == date && a.Time == timeOfDay && a.StaffID == staffID &&
			a.IsActive() && a.ID != excludeID {
			return true
		}
	}
	return false
}

func (f *fakeApptRepo) FindActive(ctx context.Context, date, timeOfDay string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Date == date && a.Time == timeOfDay && a.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) FindConflict(ctx context.Context, date, timeOfDay, staffID, excludeID string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		a := f.appts[i]
		if a.Date == date && a.Time == timeOfDay && a.StaffID == staffID &&
			a.IsActive() && a.ID != excludeID {
			return &a, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeApptRepo) CreateIfNoConflict(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	if hook := f.beforeCreate; hook != nil {
		f.beforeCreate = nil
		hook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasActiveConflict(appt.Date, appt.Time, appt.StaffID, "") {
		return nil, appointmentRepo.ErrConflict
	}
	f.appts = append(f.appts, *appt)
	return appt, nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			a := f.appts[i]
			return &a, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeApptRepo) Update(ctx context.Context, appt *models.Appointment) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if appt.IsActive() && f.hasActiveConflict(appt.Date, appt.Time, appt.StaffID, appt.ID) {
		return nil, appointmentRepo.ErrConflict
	}
	for i := range f.appts {
		if f.appts[i].ID == appt.ID {
			f.appts[i] = *appt
			return appt, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeApptRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByCustomerPhone(ctx context.Context, phone string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if a.CustomerPhone == phone {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts = append(f.appts[:i], f.appts[i+1:]...)
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

// fakeNotifier records every dispatched message by appointment id.
type fakeNotifier struct {
	confirmations []string
	reminders     []string
}

func (f *fakeNotifier) SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error {
	f.confirmations = append(f.confirmations, appt.ID)
	return nil
}

func (f *fakeNotifier) SendAppointmentReminder(ctx context.Context, appt *models.Appointment) error {
	f.reminders = append(f.reminders, appt.ID)
	return nil
}

var (
	_ scheduleRepo.ScheduleRepository       = (*fakeScheduleRepo)(nil)
	_ staffRepo.StaffRepository             = (*fakeStaffRepo)(nil)
	_ appointmentRepo.AppointmentRepository = (*fakeApptRepo)(nil)
	_ notification.NotificationService      = (*fakeNotifier)(nil)
)
