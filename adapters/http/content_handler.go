package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/naveensdev/portfolio-api/internal/application/usecase/content"
	profileUC "github.com/naveensdev/portfolio-api/internal/application/usecase/profile"
)

// ContentHandler serves the read projections. Each endpoint is a 1:1
// mapping from stored rows to response fields.
type ContentHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	contentUseCase *contentUC.ContentUseCase
}

func NewContentHandler(profileUseCase *profileUC.ProfileUseCase, contentUseCase *contentUC.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		profileUseCase: profileUseCase,
		contentUseCase: contentUseCase,
	}
}

func (h *ContentHandler) GetProfile(c *gin.Context) {
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ContentHandler) ListEducation(c *gin.Context) {
	entries, err := h.contentUseCase.ListEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTOs(entries))
}

func (h *ContentHandler) ListExperience(c *gin.Context) {
	entries, err := h.contentUseCase.ListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTOs(entries))
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	projects, err := h.contentUseCase.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}

func (h *ContentHandler) ListSkills(c *gin.Context) {
	categories, err := h.contentUseCase.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillCategoryDTOs(categories))
}

func (h *ContentHandler) ListCertifications(c *gin.Context) {
	certs, err := h.contentUseCase.ListCertifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTOs(certs))
}
