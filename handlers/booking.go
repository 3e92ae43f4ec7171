package handlers

import (
	"errors"
	"net/http"

	"medicore/models"
	"medicore/services/scheduling"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps scheduling errors onto HTTP statuses. Anything
// outside the taxonomy is a store failure.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrValidation),
		errors.Is(err, scheduling.ErrSlotUnavailable),
		errors.Is(err, scheduling.ErrInvalidStatus),
		errors.Is(err, scheduling.ErrNoUpdatesApplied):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, scheduling.ErrBookingNotFound),
		errors.Is(err, scheduling.ErrNoBookings),
		errors.Is(err, scheduling.ErrAvailabilityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

// CreateBookingHandler books a slot for a patient.
func CreateBookingHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DoctorID  string             `json:"doctorId"`
			PatientID string             `json:"patientId"`
			Date      string             `json:"date"`
			Slot      models.BookingSlot `json:"slot"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		booking, err := svc.CreateBooking(c.Request.Context(), input.DoctorID, input.PatientID, input.Date, input.Slot)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

// UpdateBookingStatusHandler changes a booking's status.
func UpdateBookingStatusHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		booking, err := svc.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.Status)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// DeleteBookingHandler removes a booking and frees its slot.
func DeleteBookingHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GetBookingsByDoctorHandler lists a doctor's bookings.
func GetBookingsByDoctorHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.GetBookingsByDoctor(c.Request.Context(), c.Param("doctorId"))
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// GetBookingsByPatientHandler lists a patient's bookings.
func GetBookingsByPatientHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.GetBookingsByPatient(c.Request.Context(), c.Param("patientId"))
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// GetAllBookingsHandler lists every booking.
func GetAllBookingsHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := svc.GetAllBookings(c.Request.Context())
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}
