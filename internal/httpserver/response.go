package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickeats/internal/domain"
)

// errorJSON maps domain errors to status codes and writes the error envelope.
func errorJSON(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart), errors.Is(err, domain.ErrVoucherIneligible):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRestaurantMismatch), errors.Is(err, domain.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidSelection):
		code = http.StatusBadRequest
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
