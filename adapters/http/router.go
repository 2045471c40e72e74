package http

import (
	"github.com/gin-gonic/gin"

	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

// NewRouter wires the public surface. All routes are read-only except the
// contact submission.
func NewRouter(
	cfg config.Config,
	log logger.Logger,
	contentHandler *ContentHandler,
	portfolioHandler *PortfolioHandler,
	contactHandler *ContactHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg))
	router.Use(ErrorMiddleware(log))

	router.GET("/health", Health)

	api := router.Group("/api")
	{
		api.GET("/portfolio", portfolioHandler.GetPortfolio)
		api.GET("/profile", contentHandler.GetProfile)
		api.GET("/education", contentHandler.ListEducation)
		api.GET("/experience", contentHandler.ListExperience)
		api.GET("/projects", contentHandler.ListProjects)
		api.GET("/skills", contentHandler.ListSkills)
		api.GET("/certifications", contentHandler.ListCertifications)
		api.POST("/contact", contactHandler.SubmitContact)
	}

	return router
}
