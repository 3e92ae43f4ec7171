package routes

import (
	"net/http"
	"testing"

	"medicore/config"
	"medicore/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func noopBundle() *handlers.HandlerBundle {
	noop := func(c *gin.Context) {}
	accounts := handlers.AccountHandlers{
		Register: noop, Login: noop, Logout: noop, Session: noop,
		Get: noop, GetAll: noop, Update: noop, Delete: noop,
	}
	return &handlers.HandlerBundle{
		CreateBooking:        noop,
		UpdateBookingStatus:  noop,
		DeleteBooking:        noop,
		GetBookingsByDoctor:  noop,
		GetBookingsByPatient: noop,
		GetAllBookings:       noop,
		CheckSlot:            noop,
		CreateAvailability:   noop,
		GetAvailability:      noop,
		UpdateAvailability:   noop,
		DeleteAvailability:   noop,
		DeleteSlot:           noop,
		Patients:             accounts,
		Doctors:              accounts,
		Admins:               accounts,
		CreateMessage:        noop,
		GetAllMessages:       noop,
		GetMessage:           noop,
		UpdateMessageStatus:  noop,
		RespondMessage:       noop,
		DeleteMessage:        noop,
		UploadReport:         noop,
		GetMyReports:         noop,
		Health:               noop,
	}
}

// Pins the mounted surface: versioned /api/v1 prefix, register/login/logout
// per role, resource-oriented message paths, and caller-scoped report listing.
func TestRegisterRoutesSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.ClientURL = "http://localhost:3000"

	r := gin.New()
	RegisterRoutes(r, noopBundle())

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		http.MethodGet + " /health",

		http.MethodPost + " /api/v1/users/register",
		http.MethodPost + " /api/v1/users/login",
		http.MethodPost + " /api/v1/users/logout",
		http.MethodGet + " /api/v1/users/session",
		http.MethodGet + " /api/v1/users/:id",
		http.MethodPost + " /api/v1/doctors/register",
		http.MethodPost + " /api/v1/admins/login",

		http.MethodPost + " /api/v1/bookings",
		http.MethodPost + " /api/v1/bookings/check",
		http.MethodGet + " /api/v1/bookings/doctor/:doctorId",
		http.MethodGet + " /api/v1/bookings/patient/:patientId",
		http.MethodPut + " /api/v1/bookings/:id",
		http.MethodDelete + " /api/v1/bookings/:id",

		http.MethodPost + " /api/v1/doctorAvailability",
		http.MethodGet + " /api/v1/doctorAvailability/:doctorId",
		http.MethodPut + " /api/v1/doctorAvailability/:id",
		http.MethodDelete + " /api/v1/doctorAvailability/:id",
		http.MethodDelete + " /api/v1/doctorAvailability/:id/slot/:slotId",

		http.MethodPost + " /api/v1/messages",
		http.MethodGet + " /api/v1/messages/:id",
		http.MethodPut + " /api/v1/messages/:id/status",
		http.MethodPut + " /api/v1/messages/:id/response",
		http.MethodDelete + " /api/v1/messages/:id",

		http.MethodPost + " /api/v1/reports/upload",
		http.MethodGet + " /api/v1/reports/mine",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
