package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/graph"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// GraphQL endpoint. The session middleware turns a bearer token into
	// a request-scoped user before execution; a presented-but-invalid
	// token fails the request here, before any resolver runs.
	router.POST("/graphql",
		middleware.Session(c.JWTManager, c.UserService),
		graph.Handler(c.Schema),
	)

	if c.Config.App.Environment == "development" {
		router.GET("/graphql", graph.GraphiQL())
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"error":  "store unreachable",
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
