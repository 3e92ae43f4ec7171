package handlers

import (
	"errors"
	"net/http"

	"medicore/services/message"

	"github.com/gin-gonic/gin"
)

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, message.ErrValidation), errors.Is(err, message.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, message.ErrMessageNotFound), errors.Is(err, message.ErrNoMessages):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

// CreateMessageHandler records a contact message from a site visitor.
func CreateMessageHandler(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		msg, err := svc.Create(c.Request.Context(), input.Name, input.Email, input.Message)
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusCreated, msg)
	}
}

// GetAllMessagesHandler lists messages newest first.
func GetAllMessagesHandler(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		msgs, err := svc.GetAll(c.Request.Context())
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, msgs)
	}
}

// GetMessageHandler fetches one message.
func GetMessageHandler(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// UpdateMessageStatusHandler moves a message through its workflow.
func UpdateMessageStatusHandler(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		msg, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// RespondMessageHandler stores an admin reply.
func RespondMessageHandler(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Response string `json:"response"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		msg, err := svc.Respond(c.Request.Context(), c.Param("id"), input.Response)
		if err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// DeleteMessageHandler removes a message.
func DeleteMessageHandler(svc message.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondMessageError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
	}
}
