package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/naveensdev/portfolio-api/internal/application/usecase/portfolio"
)

type PortfolioHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
}

func NewPortfolioHandler(uc *portfolioUC.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{portfolioUseCase: uc}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteGetPortfolio(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPortfolioDTO(output))
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
