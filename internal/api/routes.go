package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"videostore/internal/api/handlers"
	"videostore/internal/api/middleware"
)

type Router struct {
	movieHandler    *handlers.MovieHandler
	customerHandler *handlers.CustomerHandler
	logger          *zap.Logger
}

func NewRouter(
	movieHandler *handlers.MovieHandler,
	customerHandler *handlers.CustomerHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		movieHandler:    movieHandler,
		customerHandler: customerHandler,
		logger:          logger,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Logger(r.logger.Named("http")))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Catalogue
	movies := engine.Group("/movies")
	{
		movies.POST("", r.movieHandler.AddMovie)
		movies.GET("", r.movieHandler.ListMovies)
		movies.GET("/:id", r.movieHandler.GetMovie)
		movies.DELETE("/:id", r.movieHandler.RemoveMovie)
	}
	engine.GET("/price-codes", r.movieHandler.PriceCodes)
	engine.GET("/price-codes/:code/quote", r.movieHandler.Quote)

	// Customers, rentals and statements
	customers := engine.Group("/customers")
	{
		customers.POST("", r.customerHandler.CreateCustomer)
		customers.GET("", r.customerHandler.ListCustomers)
		customers.GET("/:id", r.customerHandler.GetCustomer)
		customers.DELETE("/:id", r.customerHandler.RemoveCustomer)
		customers.POST("/:id/rentals", r.customerHandler.RentMovie)
		customers.GET("/:id/statement", r.customerHandler.Statement)
		customers.GET("/:id/statement.json", r.customerHandler.StatementJSON)
	}
	engine.GET("/statements", r.customerHandler.AllStatements)
}
