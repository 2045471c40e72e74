package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/naveensdev/portfolio-api/internal/application/usecase/contact"
	"github.com/naveensdev/portfolio-api/pkg/apperror"
)

type ContactHandler struct {
	submitUseCase *contactUC.SubmitContactUseCase
}

func NewContactHandler(uc *contactUC.SubmitContactUseCase) *ContactHandler {
	return &ContactHandler{submitUseCase: uc}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact submission", err))
		return
	}

	input := contactUC.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	output, err := h.submitUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToContactMessageDTO(output.Message))
}
