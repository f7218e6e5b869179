package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/metadiego/inventory-manager-be/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {"success": true, "data": …}
// or {"success": false, "error": …}. Internal failures are logged server-side
// and surfaced with a generic message.

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	message := err.Error()
	if kind == apperrors.KindInternal {
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		message = "internal error"
	}
	c.JSON(statusFor(kind), gin.H{"success": false, "error": message})
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInvalidState:
		return http.StatusConflict
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnsupportedContactMethod:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
