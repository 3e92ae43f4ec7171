package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medicore/models"
	"medicore/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSchedulingService returns canned results so handler tests exercise only
// the HTTP mapping.
type stubSchedulingService struct {
	booking      *models.Booking
	availability *models.DoctorAvailability
	err          error
	available    bool
}

func (s *stubSchedulingService) IsSlotAvailable(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	return s.available, s.err
}

func (s *stubSchedulingService) CreateBooking(ctx context.Context, doctorID, patientID, date string, slot models.BookingSlot) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubSchedulingService) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubSchedulingService) DeleteBooking(ctx context.Context, bookingID string) error {
	return s.err
}

func (s *stubSchedulingService) GetBookingsByDoctor(ctx context.Context, doctorID string) ([]models.BookingDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.BookingDetail{{Booking: *s.booking}}, nil
}

func (s *stubSchedulingService) GetBookingsByPatient(ctx context.Context, patientID string) ([]models.BookingDetail, error) {
	return s.GetBookingsByDoctor(ctx, patientID)
}

func (s *stubSchedulingService) GetAllBookings(ctx context.Context) ([]models.BookingDetail, error) {
	return s.GetBookingsByDoctor(ctx, "")
}

func (s *stubSchedulingService) CreateAvailability(ctx context.Context, doctorID, date string, slots []models.BookingSlot) (*models.DoctorAvailability, error) {
	return s.availability, s.err
}

func (s *stubSchedulingService) GetAvailabilityByDoctor(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.DoctorAvailability{*s.availability}, nil
}

func (s *stubSchedulingService) UpdateAvailability(ctx context.Context, id string, days []models.AvailabilityDayUpdate) (*models.DoctorAvailability, error) {
	return s.availability, s.err
}

func (s *stubSchedulingService) DeleteAvailability(ctx context.Context, id string) error {
	return s.err
}

func (s *stubSchedulingService) DeleteSlot(ctx context.Context, availabilityID, slotID string) error {
	return s.err
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newBookingRouter(svc scheduling.SchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/bookings", CreateBookingHandler(svc))
	r.PUT("/bookings/:id", UpdateBookingStatusHandler(svc))
	r.DELETE("/bookings/:id", DeleteBookingHandler(svc))
	r.GET("/bookings", GetAllBookingsHandler(svc))
	r.GET("/bookings/doctor/:doctorId", GetBookingsByDoctorHandler(svc))
	r.POST("/doctorAvailability", CreateAvailabilityHandler(svc))
	r.PUT("/doctorAvailability/:id", UpdateAvailabilityHandler(svc))
	r.DELETE("/doctorAvailability/:id", DeleteAvailabilityHandler(svc))
	r.DELETE("/doctorAvailability/:id/slot/:slotId", DeleteSlotHandler(svc))
	return r
}

const bookingBody = `{"doctorId":"D1","patientId":"P1","date":"2025-01-10","slot":{"startTime":"09:00","endTime":"09:30"}}`

func TestCreateBookingHandlerCreated(t *testing.T) {
	svc := &stubSchedulingService{booking: &models.Booking{ID: "b1", Status: models.BookingStatusPending}}
	w := performRequest(newBookingRouter(svc), http.MethodPost, "/bookings", bookingBody)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"b1"`)
}

func TestCreateBookingHandlerSlotUnavailable(t *testing.T) {
	svc := &stubSchedulingService{err: scheduling.ErrSlotUnavailable}
	w := performRequest(newBookingRouter(svc), http.MethodPost, "/bookings", bookingBody)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}

func TestCreateBookingHandlerMalformedBody(t *testing.T) {
	svc := &stubSchedulingService{}
	w := performRequest(newBookingRouter(svc), http.MethodPost, "/bookings", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingHandlerStoreFailure(t *testing.T) {
	svc := &stubSchedulingService{err: assert.AnError}
	w := performRequest(newBookingRouter(svc), http.MethodPost, "/bookings", bookingBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateBookingStatusHandlerMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"invalid status", scheduling.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", scheduling.ErrBookingNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubSchedulingService{booking: &models.Booking{ID: "b1"}, err: tc.err}
			w := performRequest(newBookingRouter(svc), http.MethodPut, "/bookings/b1", `{"status":"confirmed"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestDeleteBookingHandlerNoContent(t *testing.T) {
	svc := &stubSchedulingService{}
	w := performRequest(newBookingRouter(svc), http.MethodDelete, "/bookings/b1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteBookingHandlerNotFound(t *testing.T) {
	svc := &stubSchedulingService{err: scheduling.ErrBookingNotFound}
	w := performRequest(newBookingRouter(svc), http.MethodDelete, "/bookings/b1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsHandlerEmptyIsNotFound(t *testing.T) {
	svc := &stubSchedulingService{err: scheduling.ErrNoBookings}
	w := performRequest(newBookingRouter(svc), http.MethodGet, "/bookings", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsByDoctorHandler(t *testing.T) {
	svc := &stubSchedulingService{booking: &models.Booking{ID: "b1", DoctorID: "D1"}}
	w := performRequest(newBookingRouter(svc), http.MethodGet, "/bookings/doctor/D1", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"D1"`)
}

func TestCreateAvailabilityHandlerMapping(t *testing.T) {
	svc := &stubSchedulingService{availability: &models.DoctorAvailability{ID: "a1", DoctorID: "D1"}}
	body := `{"doctorId":"D1","date":"2025-01-10","slots":[{"startTime":"09:00","endTime":"09:30"}]}`
	w := performRequest(newBookingRouter(svc), http.MethodPost, "/doctorAvailability", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	svc.err = scheduling.ErrValidation
	w = performRequest(newBookingRouter(svc), http.MethodPost, "/doctorAvailability", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAvailabilityHandlerMapping(t *testing.T) {
	body := `{"availability":[{"date":"2025-01-10","slots":[{"id":"s1","startTime":"10:00"}]}]}`

	svc := &stubSchedulingService{availability: &models.DoctorAvailability{ID: "a1"}}
	w := performRequest(newBookingRouter(svc), http.MethodPut, "/doctorAvailability/a1", body)
	assert.Equal(t, http.StatusOK, w.Code)

	svc.err = scheduling.ErrNoUpdatesApplied
	w = performRequest(newBookingRouter(svc), http.MethodPut, "/doctorAvailability/a1", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = scheduling.ErrAvailabilityNotFound
	w = performRequest(newBookingRouter(svc), http.MethodPut, "/doctorAvailability/a1", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSlotHandlerAlwaysOKWhenPresentOrAbsent(t *testing.T) {
	svc := &stubSchedulingService{}
	w := performRequest(newBookingRouter(svc), http.MethodDelete, "/doctorAvailability/a1/slot/s1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "slot deleted")
}
