package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"videostore/internal/services"
)

// writeError maps service errors onto HTTP status codes.
//
// Go Learning Note — errors.Is:
// Services wrap their sentinel errors with fmt.Errorf("%w: ...") to add
// detail. A plain == comparison would miss a wrapped error; errors.Is walks the
// wrap chain and matches the sentinel anywhere inside it.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
	case errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
	case errors.Is(err, services.ErrInvalidMovie),
		errors.Is(err, services.ErrInvalidRental),
		errors.Is(err, services.ErrInvalidCustomer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
