package v1

import (
	"context"
	"net/http"

	"go-resume-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	projection domain.ProjectionUsecase
}

// NewPublicHandler registers the anonymous read-only profile routes.
func NewPublicHandler(public *gin.RouterGroup, projection domain.ProjectionUsecase) {
	h := &PublicHandler{projection: projection}

	g := public.Group("/resume/:userId")
	g.GET("", h.GetProfile)
	g.GET("/experiences", h.GetExperiences)
	g.GET("/education", h.GetEducation)
	g.GET("/skills", h.GetSkills)
	g.GET("/languages", h.GetLanguages)
	g.GET("/hobbies", h.GetHobbies)
	g.GET("/projects", h.GetProjects)
}

// GetProfile godoc
// @Summary      Get public resume profile
// @Description  Aggregated resume of a user with every entry list, ordered by position.
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {object}  domain.ResumeProfile
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId} [get]
func (h *PublicHandler) GetProfile(c *gin.Context) {
	profile, err := h.projection.GetResumeProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetExperiences godoc
// @Summary      Get public experiences
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Experience
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId}/experiences [get]
func (h *PublicHandler) GetExperiences(c *gin.Context) {
	respondList(c, h.projection.GetExperiences, c.Param("userId"))
}

// GetEducation godoc
// @Summary      Get public education
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Education
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId}/education [get]
func (h *PublicHandler) GetEducation(c *gin.Context) {
	respondList(c, h.projection.GetEducation, c.Param("userId"))
}

// GetSkills godoc
// @Summary      Get public skills
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Skill
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId}/skills [get]
func (h *PublicHandler) GetSkills(c *gin.Context) {
	respondList(c, h.projection.GetSkills, c.Param("userId"))
}

// GetLanguages godoc
// @Summary      Get public languages
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Language
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId}/languages [get]
func (h *PublicHandler) GetLanguages(c *gin.Context) {
	respondList(c, h.projection.GetLanguages, c.Param("userId"))
}

// GetHobbies godoc
// @Summary      Get public hobbies
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Hobby
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId}/hobbies [get]
func (h *PublicHandler) GetHobbies(c *gin.Context) {
	respondList(c, h.projection.GetHobbies, c.Param("userId"))
}

// GetProjects godoc
// @Summary      Get public projects
// @Tags         public
// @Produce      json
// @Param        userId  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Project
// @Failure      404     {object}  response.Response
// @Router       /api/public/resume/{userId}/projects [get]
func (h *PublicHandler) GetProjects(c *gin.Context) {
	respondList(c, h.projection.GetProjects, c.Param("userId"))
}

// respondList renders a projection list, never as null.
func respondList[T any](c *gin.Context, get func(ctx context.Context, userID string) ([]T, error), userID string) {
	items, err := get(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}
