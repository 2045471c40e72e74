package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

// ErrorMiddleware turns errors pushed through c.Error into the API's JSON
// error shape. Anything mapping to a 5xx is masked; the details stay in
// the log.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		if status >= http.StatusInternalServerError {
			log.Error("Request failed", err)
			c.JSON(status, gin.H{"error": "internal server error"})
			return
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(status, appErr.ToJSON())
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// CORSMiddleware allows only the configured front-end origins.
func CORSMiddleware(cfg config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
