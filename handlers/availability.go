package handlers

import (
	"net/http"

	"medicore/models"
	"medicore/services/scheduling"

	"github.com/gin-gonic/gin"
)

// CreateAvailabilityHandler publishes a doctor's open slots for a date.
func CreateAvailabilityHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DoctorID string               `json:"doctorId"`
			Date     string               `json:"date"`
			Slots    []models.BookingSlot `json:"slots"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		availability, err := svc.CreateAvailability(c.Request.Context(), input.DoctorID, input.Date, input.Slots)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusCreated, availability)
	}
}

// GetAvailabilityByDoctorHandler lists a doctor's availability.
func GetAvailabilityByDoctorHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		availability, err := svc.GetAvailabilityByDoctor(c.Request.Context(), c.Param("doctorId"))
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, availability)
	}
}

// UpdateAvailabilityHandler applies partial slot edits to an availability
// document.
func UpdateAvailabilityHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Availability []models.AvailabilityDayUpdate `json:"availability"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		availability, err := svc.UpdateAvailability(c.Request.Context(), c.Param("id"), input.Availability)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, availability)
	}
}

// DeleteAvailabilityHandler removes an availability document.
func DeleteAvailabilityHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteAvailability(c.Request.Context(), c.Param("id")); err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "availability deleted"})
	}
}

// DeleteSlotHandler removes a single slot. Deleting an absent slot succeeds.
func DeleteSlotHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteSlot(c.Request.Context(), c.Param("id"), c.Param("slotId"))
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
	}
}

// CheckSlotHandler reports whether a slot is open for booking.
func CheckSlotHandler(svc scheduling.SchedulingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DoctorID  string `json:"doctorId"`
			Date      string `json:"date"`
			StartTime string `json:"startTime"`
			EndTime   string `json:"endTime"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		available, err := svc.IsSlotAvailable(c.Request.Context(), input.DoctorID, input.Date, input.StartTime, input.EndTime)
		if err != nil {
			respondSchedulingError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"available": available})
	}
}
