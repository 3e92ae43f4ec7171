package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"medicore/config"
	"medicore/middleware"
	"medicore/models"
	"medicore/services/account"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "token"
const sessionCookieMaxAge = 24 * 60 * 60

func respondAccountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrValidation), errors.Is(err, account.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrAccountNotFound), errors.Is(err, account.ErrNoAccounts):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, sessionCookieMaxAge, "/", "", config.IsProduction(), true)
}

// saveUploadedFile spools a multipart upload to a temp path for the storage
// service. Returns "" when the request carries no file under the field.
func saveUploadedFile(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	dst := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// RegisterAccountHandler creates an account and starts a session. Accepts
// JSON or multipart form with an optional image file.
func RegisterAccountHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name" form:"name"`
			Email    string `json:"email" form:"email"`
			Password string `json:"password" form:"password"`
		}
		imagePath := ""
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if err := c.ShouldBind(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
				return
			}
			path, err := saveUploadedFile(c, "image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image upload", "details": err.Error()})
				return
			}
			if path != "" {
				defer os.Remove(path)
			}
			imagePath = path
		} else if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		result, err := svc.Register(c.Request.Context(), input.Name, input.Email, input.Password, imagePath)
		if err != nil {
			respondAccountError(c, err)
			return
		}
		setSessionCookie(c, result.Token)
		c.JSON(http.StatusCreated, result.Account)
	}
}

// LoginHandler verifies credentials and sets the session cookie.
func LoginHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		result, err := svc.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			respondAccountError(c, err)
			return
		}
		setSessionCookie(c, result.Token)
		c.JSON(http.StatusOK, result.Account)
	}
}

// LogoutHandler clears the session cookie and invalidates the cached token.
func LogoutHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookie)
		if err := svc.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
			return
		}
		c.SetCookie(sessionCookie, "", -1, "/", "", config.IsProduction(), true)
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}

// SessionHandler returns the authenticated account for the current cookie.
func SessionHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := middleware.GetAuthClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		acct, err := svc.GetByID(c.Request.Context(), claims.ID)
		if err != nil {
			respondAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, acct)
	}
}

// GetAccountHandler fetches one account.
func GetAccountHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		acct, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, acct)
	}
}

// GetAllAccountsHandler lists accounts of one role.
func GetAllAccountsHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := svc.GetAll(c.Request.Context())
		if err != nil {
			respondAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, accounts)
	}
}

// UpdateAccountHandler applies a partial profile edit, optionally with a new
// avatar file.
func UpdateAccountHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.AccountUpdate
		imagePath := ""
		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if err := c.ShouldBind(&update); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
				return
			}
			path, err := saveUploadedFile(c, "image")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image upload", "details": err.Error()})
				return
			}
			if path != "" {
				defer os.Remove(path)
			}
			imagePath = path
		} else if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		acct, err := svc.Update(c.Request.Context(), c.Param("id"), update, imagePath)
		if err != nil {
			respondAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, acct)
	}
}

// DeleteAccountHandler removes an account.
func DeleteAccountHandler(svc account.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondAccountError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
	}
}
