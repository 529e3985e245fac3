package httpserver

import (
	"errors"
	"net/http"

	"ecommerce-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to HTTP statuses with a short detail
// string, the single place where that translation happens.
func respondError(c *gin.Context, err error) {
	var validation domain.ValidationError
	if errors.As(err, &validation) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": validation.Detail})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}

	c.AbortWithStatusJSON(status, gin.H{"detail": detailFor(err, status)})
}

func detailFor(err error, status int) string {
	var detailed domain.DetailedError
	if errors.As(err, &detailed) {
		return detailed.Detail
	}
	switch status {
	case http.StatusNotFound:
		return "Not found"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusConflict:
		return "Already exists"
	}
	return "Internal server error"
}
