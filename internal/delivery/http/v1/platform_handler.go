package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/apperror"
	"go-resume-backend/pkg/sanitize"

	"github.com/gin-gonic/gin"
)

// platformInput is the entry DTO shape the platform endpoints rely on.
type platformInput interface {
	Fields() *domain.EntryFields
	Required() []domain.Field
}

type PlatformHandler struct {
	resources  usecase.Resources
	projection domain.ProjectionUsecase
	setup      domain.SetupUsecase
	export     domain.ExportUsecase
}

// NewPlatformHandler registers the routes the resume editor of the platform
// frontend uses. Every route acts on the authenticated user.
func NewPlatformHandler(protected *gin.RouterGroup, resources usecase.Resources, projection domain.ProjectionUsecase, setup domain.SetupUsecase, export domain.ExportUsecase) {
	h := &PlatformHandler{resources: resources, projection: projection, setup: setup, export: export}

	g := protected.Group("/platform/resume")
	g.GET("/", h.GetProfile)
	g.GET("/experiences", currentUserList(projection.GetExperiences))
	g.GET("/education", currentUserList(projection.GetEducation))
	g.GET("/skills", currentUserList(projection.GetSkills))
	g.GET("/languages", currentUserList(projection.GetLanguages))
	g.GET("/hobbies", currentUserList(projection.GetHobbies))
	g.GET("/projects", currentUserList(projection.GetProjects))
	g.GET("/export", h.Export)
	g.POST("/create", h.CreateResume)

	registerPlatformEntry[*domain.Experience, *domain.ExperienceInput](g.Group("/experience"), h, resources.Experience,
		func() *domain.ExperienceInput { return &domain.ExperienceInput{} },
		"Company, role and start date are required.", true)
	registerPlatformEntry[*domain.Education, *domain.EducationInput](g.Group("/education"), h, resources.Education,
		func() *domain.EducationInput { return &domain.EducationInput{} },
		"School name is required.", false)
	registerPlatformEntry[*domain.Skill, *domain.SkillInput](g.Group("/skill"), h, resources.Skill,
		func() *domain.SkillInput { return &domain.SkillInput{} },
		"Skill name is required.", false)
	registerPlatformEntry[*domain.Language, *domain.LanguageInput](g.Group("/language"), h, resources.Language,
		func() *domain.LanguageInput { return &domain.LanguageInput{} },
		"Language name is required.", false)
	registerPlatformEntry[*domain.Hobby, *domain.HobbyInput](g.Group("/hobby"), h, resources.Hobby,
		func() *domain.HobbyInput { return &domain.HobbyInput{} },
		"Hobby name is required.", false)
	registerPlatformEntry[*domain.Project, *domain.ProjectInput](g.Group("/project"), h, resources.Project,
		func() *domain.ProjectInput { return &domain.ProjectInput{} },
		"Project title is required.", false)
}

// GetProfile godoc
// @Summary      Get my resume profile
// @Tags         platform
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ResumeProfile
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/platform/resume/ [get]
func (h *PlatformHandler) GetProfile(c *gin.Context) {
	profile, err := h.projection.GetResumeProfile(c.Request.Context(), domain.UserIDFromContext(c.Request.Context()))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// currentUserList serves a projection list of the authenticated user.
func currentUserList[T any](get func(ctx context.Context, userID string) ([]T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondList(c, get, domain.UserIDFromContext(c.Request.Context()))
	}
}

// CreateResume godoc
// @Summary      Create or replace my resume
// @Tags         platform
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        resume  body      domain.ResumeInput  true  "Resume"
// @Success      201     {object}  domain.Resume
// @Failure      400     {object}  response.Response
// @Router       /api/platform/resume/create [post]
func (h *PlatformHandler) CreateResume(c *gin.Context) {
	ctx := c.Request.Context()
	userID := domain.UserIDFromContext(ctx)

	in := &domain.ResumeInput{}
	if _, err := readObject(c, in); err != nil {
		c.Error(err)
		return
	}
	if blank(in.FullName) || blank(in.Headline) {
		c.Error(apperror.BadRequest("Missing required fields."))
		return
	}
	in.UserID = &userID

	var resume *domain.Resume
	existing, err := h.resources.Resume.FindOneByUserID(ctx, userID)
	switch {
	case err == nil:
		resume, err = h.resources.Resume.Update(ctx, existing.ID, in)
	case errors.Is(err, domain.ErrNotFound):
		resume, err = h.resources.Resume.Create(ctx, in)
	}
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

// Export godoc
// @Summary      Export my resume
// @Tags         platform
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Security     BearerAuth
// @Param        format  query     string  false  "xlsx (default) or csv"
// @Success      200     {file}    binary
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /api/platform/resume/export [get]
func (h *PlatformHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	file, err := h.export.Export(ctx, domain.UserIDFromContext(ctx), c.DefaultQuery("format", usecase.ExportFormatXLSX))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// registerPlatformEntry mounts create, edit and delete for one entry kind.
// Experiences must name their resume; other kinds default to the caller's
// resume, created on demand.
func registerPlatformEntry[E any, I platformInput](g *gin.RouterGroup, h *PlatformHandler, uc domain.EntryUsecase[E, I], newInput func() I, requiredMsg string, needsResumeID bool) {
	g.POST("/create", func(c *gin.Context) {
		ctx := c.Request.Context()
		userID := domain.UserIDFromContext(ctx)

		in := newInput()
		if _, err := readObject(c, in); err != nil {
			c.Error(err)
			return
		}
		f := in.Fields()

		if needsResumeID && blank(f.ResumeID) {
			c.Error(apperror.BadRequest("Missing resume identifier."))
			return
		}
		for _, field := range in.Required() {
			if blank(field.Value) {
				c.Error(apperror.BadRequest(requiredMsg))
				return
			}
		}
		if blank(f.ResumeID) {
			resume, err := h.setup.InitResume(ctx, userID, domain.UserNameFromContext(ctx))
			if err != nil {
				c.Error(err)
				return
			}
			f.ResumeID = &resume.ID
		}
		f.UserID = &userID

		e, err := uc.Create(ctx, in)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, e)
	})

	g.PATCH("/:id/edit", func(c *gin.Context) {
		in := newInput()
		fields, err := readObject(c, in)
		if err != nil {
			c.Error(err)
			return
		}
		if len(fields) == 0 {
			c.Error(apperror.BadRequest("No data provided for update."))
			return
		}

		e, err := uc.Patch(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, e)
	})

	g.DELETE("/:id", func(c *gin.Context) {
		if err := uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			c.Error(err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

func blank(s *string) bool {
	return sanitize.Blank(s)
}
