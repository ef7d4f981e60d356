package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/devfolio/portfolio-api/internal/services"
	apperrors "github.com/devfolio/portfolio-api/pkg/errors"
	"github.com/gin-gonic/gin"
)

const invalidDataMessage = "The given data was invalid."

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends a failure envelope and attaches err to the gin context
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondValidation(c *gin.Context, ve *services.ValidationError) {
	attachError(c, ve)
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": invalidDataMessage,
		"errors":  ve.Fields,
	})
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string, data any) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondServiceError maps service errors onto HTTP statuses
func respondServiceError(c *gin.Context, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		respondValidation(c, ve)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Unauthenticated.", err)
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// bindJSON decodes the request body into req. An empty body leaves req
// untouched so that the service reports missing fields. It writes the error
// response itself and returns false when the body cannot be used.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		respondValidation(c, services.NewValidationError(typeErr.Field,
			fmt.Sprintf("The %s field must be of type %s.", typeErr.Field, jsonTypeName(typeErr.Type.String()))))
		return false
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		respondError(c, http.StatusRequestEntityTooLarge, "Request body too large", err)
		return false
	}

	respondError(c, http.StatusBadRequest, "Malformed JSON body", err)
	return false
}

func jsonTypeName(goType string) string {
	switch goType {
	case "string", "*string":
		return "string"
	case "int", "*int", "int64", "*int64":
		return "integer"
	case "bool", "*bool":
		return "boolean"
	default:
		return goType
	}
}

// parseID reads the :id route parameter. Identifiers that can never exist
// are reported as a missing resource.
func parseID(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusNotFound, resource+" not found", fmt.Errorf("invalid %s id %q", resource, c.Param("id")))
		return 0, false
	}
	return id, true
}

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
}
