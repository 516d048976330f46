package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"thanawyia/middleware"
	"thanawyia/models"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

type mockBookingService struct {
	GetByIDFunc      func(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatusFunc func(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error)
	CancelFunc       func(ctx context.Context, id, reason string) (*models.Booking, error)
	ListFunc         func(ctx context.Context, who string) ([]models.Booking, error)
}

func (m *mockBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	return &models.Booking{ID: "b_1", StudentID: req.StudentID, TutorID: req.TutorID, Status: models.BookingPending}, nil
}
func (m *mockBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockBookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return m.ListFunc(ctx, "all")
}
func (m *mockBookingService) ListByStudent(ctx context.Context, studentID string) ([]models.Booking, error) {
	return m.ListFunc(ctx, "student:"+studentID)
}
func (m *mockBookingService) ListByTutor(ctx context.Context, tutorID string) ([]models.Booking, error) {
	return m.ListFunc(ctx, "tutor:"+tutorID)
}
func (m *mockBookingService) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	return m.UpdateStatusFunc(ctx, id, status)
}
func (m *mockBookingService) Cancel(ctx context.Context, id, reason string) (*models.Booking, error) {
	return m.CancelFunc(ctx, id, reason)
}
func (m *mockBookingService) CountByStatus(ctx context.Context) (map[models.BookingStatus]int, error) {
	return nil, nil
}

// asCaller stands in for JWTAuthMiddleware.
func asCaller(id string, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextAccountID, id)
		c.Set(middleware.ContextRole, string(role))
		c.Next()
	}
}

func newBookingRouter(svc *mockBookingService, id string, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.Use(asCaller(id, role))
	r.POST("/bookings", h.CreateBookingHandler)
	r.GET("/bookings/mine", h.ListMyBookingsHandler)
	r.GET("/bookings/:id", h.GetBookingHandler)
	r.PATCH("/bookings/:id/status", h.UpdateStatusHandler)
	r.POST("/bookings/:id/cancel", h.CancelBookingHandler)
	return r
}

func existingBooking() *mockBookingService {
	return &mockBookingService{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Booking, error) {
			if id != "b_1" {
				return nil, utils.NotFound("booking %s not found", id)
			}
			return &models.Booking{ID: "b_1", StudentID: "student_1", TutorID: "tutor_1", Status: models.BookingPending}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
			return &models.Booking{ID: id, StudentID: "student_1", TutorID: "tutor_1", Status: status}, nil
		},
		CancelFunc: func(ctx context.Context, id, reason string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.BookingCancelled, CancelReason: reason}, nil
		},
		ListFunc: func(ctx context.Context, who string) ([]models.Booking, error) {
			return []models.Booking{{ID: who}}, nil
		},
	}
}

func TestGetBookingHandler(t *testing.T) {
	tests := []struct {
		name       string
		caller     string
		role       models.Role
		path       string
		wantStatus int
		wantKind   utils.ErrorKind
	}{
		{"student participant", "student_1", models.RoleStudent, "/bookings/b_1", http.StatusOK, ""},
		{"tutor participant", "tutor_1", models.RoleTutor, "/bookings/b_1", http.StatusOK, ""},
		{"admin", "admin_1", models.RoleAdmin, "/bookings/b_1", http.StatusOK, ""},
		{"outsider", "student_2", models.RoleStudent, "/bookings/b_1", http.StatusForbidden, utils.KindForbidden},
		{"missing", "student_1", models.RoleStudent, "/bookings/b_9", http.StatusNotFound, utils.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newBookingRouter(existingBooking(), tt.caller, tt.role)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if tt.wantKind == "" {
				if body["success"] != true || body["booking"] == nil {
					t.Errorf("expected success envelope, got %v", body)
				}
				return
			}
			if body["success"] != false || body["error"] != string(tt.wantKind) {
				t.Errorf("expected %s failure envelope, got %v", tt.wantKind, body)
			}
		})
	}
}

func TestUpdateStatusHandlerOnlyBookedTutor(t *testing.T) {
	body := `{"status":"confirmed"}`

	r := newBookingRouter(existingBooking(), "tutor_2", models.RoleTutor)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/bookings/b_1/status", strings.NewReader(body)))
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for another tutor, got %d", w.Code)
	}

	r = newBookingRouter(existingBooking(), "tutor_1", models.RoleTutor)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/bookings/b_1/status", strings.NewReader(body)))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"confirmed"`) {
		t.Errorf("expected confirmed booking, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingHandlerForcesCaller(t *testing.T) {
	r := newBookingRouter(existingBooking(), "student_1", models.RoleStudent)
	w := httptest.NewRecorder()
	payload := `{"studentId":"student_2","tutorId":"tutor_1","subject":"Math","date":"2024-06-01","time":"10:00","duration":1}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(payload)))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"studentId":"student_1"`) {
		t.Errorf("expected studentId to be the caller, got %s", w.Body.String())
	}
}

func TestCreateBookingHandlerRejectsBadJSON(t *testing.T) {
	r := newBookingRouter(existingBooking(), "student_1", models.RoleStudent)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader("{")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestListMyBookingsHandlerByRole(t *testing.T) {
	tests := []struct {
		caller string
		role   models.Role
		want   string
	}{
		{"student_1", models.RoleStudent, "student:student_1"},
		{"tutor_1", models.RoleTutor, "tutor:tutor_1"},
		{"admin_1", models.RoleAdmin, "all"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			r := newBookingRouter(existingBooking(), tt.caller, tt.role)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/mine", nil))
			if !strings.Contains(w.Body.String(), `"id":"`+tt.want+`"`) {
				t.Errorf("expected listing for %s, got %s", tt.want, w.Body.String())
			}
		})
	}
}

func TestCancelBookingHandlerPassesReason(t *testing.T) {
	r := newBookingRouter(existingBooking(), "student_1", models.RoleStudent)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bookings/b_1/cancel", strings.NewReader(`{"reason":"sick"}`)))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"cancelReason":"sick"`) {
		t.Errorf("expected cancellation with reason, got %d: %s", w.Code, w.Body.String())
	}
}
