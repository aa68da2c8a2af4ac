package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"videostore/internal/domain/entities"
	"videostore/internal/services"
)

// MovieHandler groups the catalogue endpoints.
type MovieHandler struct {
	catalogService *services.CatalogService
}

func NewMovieHandler(catalogService *services.CatalogService) *MovieHandler {
	return &MovieHandler{catalogService: catalogService}
}

// AddMovieRequest is the JSON body for adding a title to the catalogue. The
// oneof rule rejects unknown price codes before they reach the domain.
type AddMovieRequest struct {
	Title     string `json:"title" binding:"required"`
	PriceCode string `json:"price_code" binding:"required,oneof=new_release regular childrens"`
}

// AddMovie handles POST /movies
func (h *MovieHandler) AddMovie(c *gin.Context) {
	var req AddMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.catalogService.AddMovie(c.Request.Context(), req.Title, entities.PriceCode(req.PriceCode))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// ListMovies handles GET /movies
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.catalogService.ListMovies(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /movies/:id
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movie, err := h.catalogService.GetMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// RemoveMovie handles DELETE /movies/:id
func (h *MovieHandler) RemoveMovie(c *gin.Context) {
	if err := h.catalogService.RemoveMovie(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QuoteQuery carries the rental length for a price quote. Days is a pointer
// so that a missing parameter is rejected rather than quoted as 0 days.
type QuoteQuery struct {
	Days *int `form:"days" binding:"required"`
}

// PriceCodes handles GET /price-codes
func (h *MovieHandler) PriceCodes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.PriceCodes())
}

// Quote handles GET /price-codes/:code/quote?days=N
func (h *MovieHandler) Quote(c *gin.Context) {
	var q QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.catalogService.Quote(entities.PriceCode(c.Param("code")), *q.Days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
