package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"lumibelle/models"
	"lumibelle/services/staff"
)

// recordingStaffService captures the patch the handler forwards and applies
// it to a single stored member.
type recordingStaffService struct {
	member    models.StaffMember
	lastPatch *models.StaffPatch
}

var _ staff.StaffService = (*recordingStaffService)(nil)

func (s *recordingStaffService) Create(ctx context.Context, name string, rating float64, specialties []string) (*models.StaffMember, error) {
	return &s.member, nil
}

func (s *recordingStaffService) Update(ctx context.Context, id string, patch models.StaffPatch) (*models.StaffMember, error) {
	s.lastPatch = &patch
	if patch.Name != nil {
		s.member.Name = *patch.Name
	}
	if patch.Rating != nil {
		s.member.Rating = *patch.Rating
	}
	if patch.Specialties != nil {
		s.member.Specialties = *patch.Specialties
	}
	if patch.IsActive != nil {
		s.member.IsActive = *patch.IsActive
	}
	return &s.member, nil
}

func (s *recordingStaffService) SetActive(ctx context.Context, id string, active bool) error {
	s.member.IsActive = active
	return nil
}

func (s *recordingStaffService) Get(ctx context.Context, id string) (*models.StaffMember, error) {
	return &s.member, nil
}

func (s *recordingStaffService) ListAll(ctx context.Context) ([]models.StaffMember, error) {
	return []models.StaffMember{s.member}, nil
}

func (s *recordingStaffService) ListActive(ctx context.Context) ([]models.StaffMember, error) {
	if !s.member.IsActive {
		return nil, nil
	}
	return []models.StaffMember{s.member}, nil
}

func newStaffTestRouter(svc staff.StaffService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStaffHandler(svc)
	r.PATCH("/staff/:id", h.Update)
	return r
}

func TestStaffUpdate_OmittedFieldsStayUntouched(t *testing.T) {
	svc := &recordingStaffService{member: models.StaffMember{
		ID:        "S1",
		Name:      "Amara",
		IsActive:  true,
		Rating:    4.5,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	router := newStaffTestRouter(svc)

	body := `{"name":"Amara N.","rating":4.5}`
	req := httptest.NewRequest(http.MethodPatch, "/staff/S1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if svc.lastPatch == nil {
		t.Fatalf("service never received the patch")
	}
	if svc.lastPatch.IsActive != nil {
		t.Errorf("omitted isActive was bound to %v, want nil", *svc.lastPatch.IsActive)
	}
	if svc.lastPatch.Name == nil || *svc.lastPatch.Name != "Amara N." {
		t.Errorf("name patch = %v, want Amara N.", svc.lastPatch.Name)
	}
	if !svc.member.IsActive {
		t.Errorf("name-only PATCH deactivated the staff member")
	}
	if svc.member.CreatedAt.IsZero() {
		t.Errorf("name-only PATCH zeroed createdAt")
	}
}

func TestStaffUpdate_ExplicitIsActiveIsForwarded(t *testing.T) {
	svc := &recordingStaffService{member: models.StaffMember{
		ID:       "S1",
		Name:     "Amara",
		IsActive: true,
		Rating:   4.5,
	}}
	router := newStaffTestRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/staff/S1", strings.NewReader(`{"isActive":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if svc.lastPatch == nil || svc.lastPatch.IsActive == nil || *svc.lastPatch.IsActive {
		t.Fatalf("explicit isActive=false was not forwarded: %+v", svc.lastPatch)
	}
	if svc.member.IsActive {
		t.Errorf("member should be inactive after explicit isActive=false")
	}
}
