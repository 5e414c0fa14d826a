package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/IamTheLime/airbyte/internal/database"
	"github.com/IamTheLime/airbyte/internal/models"
)

// RespondWithError sends a standardized JSON error response and logs it.
func RespondWithError(c *gin.Context, httpStatus int, appErrorCode string, message string, details interface{}) {
	entry := logrus.WithFields(logrus.Fields{
		"status": httpStatus,
		"code":   appErrorCode,
		"path":   c.FullPath(),
	})
	if httpStatus >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Debug(message)
	}

	c.AbortWithStatusJSON(httpStatus, models.APIError{
		Code:    appErrorCode,
		Message: message,
		Details: details,
	})
}

// RespondWithSuccess sends a JSON success response, or no body for nil data.
func RespondWithSuccess(c *gin.Context, httpStatus int, data interface{}) {
	if data != nil {
		c.JSON(httpStatus, data)
	} else {
		c.Status(httpStatus)
	}
}

// respondBindError distinguishes malformed JSON from payloads failing validation.
func respondBindError(c *gin.Context, err error) {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidJSON, "Malformed JSON payload", gin.H{"reason": err.Error()})
		return
	}
	RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation, "Invalid request payload", gin.H{"reason": err.Error()})
}

// respondStoreError maps store sentinels onto API errors. notFoundCode is used
// for a missing primary record.
func respondStoreError(c *gin.Context, err error, notFoundCode, what string) {
	switch {
	case errors.Is(err, database.ErrForeignKey):
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeForeignKeyNotFound, "Referenced record does not exist in this workspace", gin.H{"reason": err.Error()})
	case errors.Is(err, database.ErrDuplicate):
		RespondWithError(c, http.StatusConflict, models.ErrorCodeDuplicateName, what+" with this name already exists.", nil)
	case errors.Is(err, database.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, notFoundCode, what+" not found", nil)
	case errors.Is(err, database.ErrStatus):
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidEnumValue, "Invalid connection status", gin.H{"reason": err.Error()})
	default:
		logrus.WithError(err).Error("store operation failed")
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError, "Failed to process "+what, nil)
	}
}
