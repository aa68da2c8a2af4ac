package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videostore/internal/services"
)

// CustomerHandler groups the customer, rental and statement endpoints.
type CustomerHandler struct {
	billingService *services.BillingService
}

func NewCustomerHandler(billingService *services.BillingService) *CustomerHandler {
	return &CustomerHandler{billingService: billingService}
}

type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.billingService.CreateCustomer(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.billingService.ListCustomers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.billingService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// RemoveCustomer handles DELETE /customers/:id
func (h *CustomerHandler) RemoveCustomer(c *gin.Context) {
	if err := h.billingService.RemoveCustomer(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RentMovieRequest is the JSON body for recording a rental.
//
// Go Learning Note — Pointer Fields with "required":
// The validator treats a field's zero value as "missing", so a plain int
// tagged required would reject a legitimate 0-day rental. Declaring the field
// as *int moves the check to "was the key present at all" (nil vs non-nil).
// Negative values are left for the domain to reject.
type RentMovieRequest struct {
	MovieID    string `json:"movie_id" binding:"required"`
	DaysRented *int   `json:"days_rented" binding:"required"`
}

// RentMovie handles POST /customers/:id/rentals
func (h *CustomerHandler) RentMovie(c *gin.Context) {
	var req RentMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.billingService.RentMovie(c.Request.Context(), c.Param("id"), req.MovieID, *req.DaysRented)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// Statement handles GET /customers/:id/statement and returns plain text.
func (h *CustomerHandler) Statement(c *gin.Context) {
	stmt, err := h.billingService.Statement(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	// c.Data rather than c.String: c.String treats its argument as a format
	// string, and movie titles may contain '%'.
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(stmt))
}

// StatementJSON handles GET /customers/:id/statement.json
func (h *CustomerHandler) StatementJSON(c *gin.Context) {
	summary, err := h.billingService.StatementSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AllStatements handles GET /statements
func (h *CustomerHandler) AllStatements(c *gin.Context) {
	statements, err := h.billingService.AllStatements(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, statements)
}
