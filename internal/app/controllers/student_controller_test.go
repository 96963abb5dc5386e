package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mwss/sevaportal/internal/app/models"
	"github.com/mwss/sevaportal/internal/app/services"
	"github.com/mwss/sevaportal/internal/middleware"
	"github.com/mwss/sevaportal/internal/pkg/apperrors"
	"github.com/mwss/sevaportal/internal/pkg/auth"
)

type stubStudentStore struct {
	students map[int64]*models.Student
}

func (s *stubStudentStore) Create(context.Context, *models.Student) error { return nil }

func (s *stubStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *stubStudentStore) GetByEmail(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) GetByRegistrationNumber(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) GetByRollNumber(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

func (s *stubStudentStore) List(context.Context, string, string) ([]*models.Student, error) {
	return nil, nil
}

func (s *stubStudentStore) Update(context.Context, int64, map[string]interface{}) error { return nil }

func (s *stubStudentStore) SetRollNumber(context.Context, int64, string) error { return nil }

func (s *stubStudentStore) RecordPayment(context.Context, int64, int, time.Time) error { return nil }

func (s *stubStudentStore) Delete(context.Context, int64) error { return nil }

func (s *stubStudentStore) EmailExists(context.Context, string) (bool, error) { return false, nil }

func (s *stubStudentStore) CountByRegistrationPrefix(context.Context, string) (int64, error) {
	return 0, nil
}

func (s *stubStudentStore) CountByRollPrefix(context.Context, string) (int64, error) {
	return 0, nil
}

func (s *stubStudentStore) Stats(context.Context) (total, today, feesPaid, active int64, err error) {
	return 0, 0, 0, 0, nil
}

func (s *stubStudentStore) ListFeePaid(context.Context) ([]*models.Student, error) { return nil, nil }

type stubSequenceStore struct{}

func (stubSequenceStore) Reserve(context.Context, string, int64, int64) (int64, error) {
	return 1, nil
}

type stubMembershipCounter struct{}

func (stubMembershipCounter) Count(context.Context) (int64, error) { return 0, nil }

type stubCardCounter struct{}

func (stubCardCounter) CountByPrefix(context.Context, string) (int64, error) { return 0, nil }

func newStudentTestRouter(t *testing.T, store *stubStudentStore) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "mwss.org.in",
	})
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	allocator := services.NewAllocatorService(stubSequenceStore{}, store, stubMembershipCounter{}, stubCardCounter{})
	studentService := services.NewStudentService(store, allocator, zerolog.Nop())
	controller := NewStudentController(studentService, zerolog.Nop())

	router := gin.New()
	authenticated := router.Group("", authMiddleware.JWTAuth())
	authenticated.GET("/students/:id", controller.Get)

	return router, jwtService
}

func getStudent(router *gin.Engine, id string, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/students/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetStudentOwnRecord(t *testing.T) {
	store := &stubStudentStore{students: map[int64]*models.Student{
		7: {ID: 7, Email: "seven@example.com", FullName: "Seven", IsActive: true},
	}}
	router, jwtService := newStudentTestRouter(t, store)

	token, _, err := jwtService.GenerateToken(7, "seven@example.com", auth.RoleStudent, "Seven")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := getStudent(router, "7", token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestGetStudentOtherRecordForbidden(t *testing.T) {
	store := &stubStudentStore{students: map[int64]*models.Student{
		7: {ID: 7, Email: "seven@example.com", FullName: "Seven", IsActive: true},
		8: {ID: 8, Email: "eight@example.com", FullName: "Eight", IsActive: true},
	}}
	router, jwtService := newStudentTestRouter(t, store)

	token, _, err := jwtService.GenerateToken(7, "seven@example.com", auth.RoleStudent, "Seven")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := getStudent(router, "8", token)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestGetStudentAsAdmin(t *testing.T) {
	store := &stubStudentStore{students: map[int64]*models.Student{
		7: {ID: 7, Email: "seven@example.com", FullName: "Seven", IsActive: true},
	}}
	router, jwtService := newStudentTestRouter(t, store)

	token, _, err := jwtService.GenerateToken(1, "admin@mwss.org.in", auth.RoleAdmin, "Admin")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	w := getStudent(router, "7", token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
